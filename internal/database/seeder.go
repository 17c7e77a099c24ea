package database

import (
	"log"

	"magang-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Akun bawaan untuk development. Password wajib diganti di production.
const (
	AdminEmail     = "admin@disdik.go.id"
	PesertaEmail   = "peserta@disdik.go.id"
	PasswordBawaan = "admin123"
)

func SeedAll(db *gorm.DB) error {
	// 1. Seed Lokasi Kantor
	lokasi := model.Lokasi{
		NamaLokasi:  "Kantor Dinas Pendidikan",
		Alamat:      "Jl. Sudirman No. 52, Padang",
		Latitude:    -0.9471,
		Longitude:   100.4172,
		RadiusMeter: 100,
	}
	if err := db.FirstOrCreate(&lokasi, model.Lokasi{NamaLokasi: lokasi.NamaLokasi}).Error; err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(PasswordBawaan), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 2. Seed Akun Admin
	admin := model.User{Name: "Administrator", Email: AdminEmail, Role: model.RoleAdmin}
	if err := seedUser(db, &admin, string(hashedPassword)); err != nil {
		return err
	}
	log.Println("Seeding Admin berhasil!")

	// 3. Seed Peserta contoh
	peserta := model.User{Name: "Budi Peserta", Email: PesertaEmail, Role: model.RolePeserta}
	return seedUser(db, &peserta, string(hashedPassword))
}

// seedUser membuat user bila belum ada, lalu menyamakan password dengan PasswordBawaan.
func seedUser(db *gorm.DB, u *model.User, hash string) error {
	u.Password = hash
	if err := db.FirstOrCreate(u, model.User{Email: u.Email}).Error; err != nil {
		return err
	}
	return db.Model(u).Update("password", hash).Error
}
