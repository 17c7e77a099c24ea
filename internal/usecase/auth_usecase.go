package usecase

import (
	"errors"
	"strings"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrLoginGagal = errors.New("Email atau password salah")

type AuthUsecase struct {
	repo   repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUsecase(repo repository.UserRepository, secret string, ttlHours int) *AuthUsecase {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthUsecase{repo: repo, secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register: pendaftaran publik selalu peserta. Akun admin hanya boleh dibuat oleh admin.
func (u *AuthUsecase) Register(in RegisterInput, caller *Actor) (*model.User, error) {
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = model.RolePeserta
	}
	if role != model.RolePeserta && role != model.RoleAdmin {
		return nil, invalid("Role harus admin atau peserta")
	}
	if role == model.RoleAdmin && (caller == nil || caller.Role != model.RoleAdmin) {
		return nil, ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := u.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrConflict
	}

	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2. Simpan ke Database
	user := &model.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := u.repo.Create(user); err != nil {
		// registrasi bersamaan dengan email sama lolos cek di atas, ditahan unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Login mengembalikan token JWT dan data user.
func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan email
	user, err := u.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrLoginGagal
		}
		return "", nil, err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrLoginGagal
	}

	// 3. Jika benar, buat Token JWT
	token, err := u.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) GenerateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"id":      user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(u.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}

func (u *AuthUsecase) Me(actor Actor) (*model.User, error) {
	if !actor.Valid() {
		return nil, ErrUnauthorized
	}
	user, err := u.repo.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
