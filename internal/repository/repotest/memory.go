// Package repotest menyediakan repository in-memory untuk test usecase dan handler.
package repotest

import (
	"sort"
	"strings"
	"sync"
	"time"

	"magang-backend/internal/laporan"
	"magang-backend/internal/model"
	"magang-backend/internal/repository"

	"gorm.io/gorm"
)

// Store menyimpan semua tabel di memori. Relasi User/ReviewedBy diisi saat dibaca.
type Store struct {
	mu       sync.Mutex
	seq      uint
	users    map[uint]*model.User
	presensi map[uint]*model.Presensi
	laporan  map[uint]*model.Laporan
	feedback []model.Feedback
	lokasi   map[uint]*model.Lokasi

	// FailCreate membuat Create presensi/laporan gagal (simulasi error DB).
	FailCreate error
}

func NewStore() *Store {
	return &Store{
		users:    map[uint]*model.User{},
		presensi: map[uint]*model.Presensi{},
		laporan:  map[uint]*model.Laporan{},
		lokasi:   map[uint]*model.Lokasi{},
	}
}

func (s *Store) next() uint {
	s.seq++
	return s.seq
}

// AddUser menambah user langsung (tanpa hash password).
func (s *Store) AddUser(name, email, role string) *model.User {
	u := &model.User{Name: name, Email: email, Role: role}
	_ = s.Users().Create(u)
	return u
}

func (s *Store) Users() repository.UserRepository           { return userRepo{s} }
func (s *Store) Presensi() repository.PresensiRepository   { return presensiRepo{s} }
func (s *Store) Laporan() repository.LaporanRepository     { return laporanRepo{s} }
func (s *Store) Feedback() repository.FeedbackRepository   { return feedbackRepo{s} }
func (s *Store) Lokasi() repository.LokasiRepository       { return lokasiRepo{s} }
func (s *Store) Dashboard() repository.DashboardRepository { return dashboardRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.s.next()
	u.CreatedAt = time.Now()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r userRepo) GetByEmail(email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == email {
			cp := *x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r userRepo) GetByID(id uint) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *x
	return &cp, nil
}

func (r userRepo) GetPeserta(search string) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(search)
	var out []model.User
	for _, x := range r.s.users {
		if x.Role != model.RolePeserta {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(x.Name+" "+x.Email), q) {
			continue
		}
		out = append(out, *x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type presensiRepo struct{ s *Store }

func (r presensiRepo) Create(p *model.Presensi) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailCreate != nil {
		return r.s.FailCreate
	}
	for _, x := range r.s.presensi {
		if x.UserID == p.UserID && x.Tanggal == p.Tanggal {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = r.s.next()
	cp := *p
	r.s.presensi[p.ID] = &cp
	return nil
}

func (r presensiRepo) Update(p *model.Presensi) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	cp.User = model.User{}
	r.s.presensi[p.ID] = &cp
	return nil
}

func (r presensiRepo) GetByDate(userID uint, tanggal string) (*model.Presensi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.presensi {
		if x.UserID == userID && x.Tanggal == tanggal {
			cp := *x
			return &cp, nil
		}
	}
	return nil, nil
}

func (r presensiRepo) GetHistory(userID uint) ([]model.Presensi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Presensi
	for _, x := range r.s.presensi {
		if x.UserID == userID {
			out = append(out, *x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tanggal > out[j].Tanggal })
	return out, nil
}

func (r presensiRepo) GetAll(search string) ([]model.Presensi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(search)
	var out []model.Presensi
	for _, x := range r.s.presensi {
		cp := *x
		if u, ok := r.s.users[x.UserID]; ok {
			cp.User = *u
		}
		if q != "" && !strings.Contains(strings.ToLower(cp.User.Name+" "+cp.User.Email), q) {
			continue
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tanggal > out[j].Tanggal })
	return out, nil
}

func (r presensiRepo) CountHadirByUser() (map[uint]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[uint]int64{}
	for _, x := range r.s.presensi {
		if x.JamMasuk != "" {
			out[x.UserID]++
		}
	}
	return out, nil
}

type laporanRepo struct{ s *Store }

func (r laporanRepo) Create(l *model.Laporan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailCreate != nil {
		return r.s.FailCreate
	}
	l.ID = r.s.next()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	if l.Status == "" {
		l.Status = laporan.Pending
	}
	cp := *l
	r.s.laporan[l.ID] = &cp
	return nil
}

func (r laporanRepo) Update(l *model.Laporan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.laporan[l.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *l
	cp.User = model.User{}
	cp.ReviewedBy = nil
	r.s.laporan[l.ID] = &cp
	return nil
}

func (r laporanRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.laporan, id)
	return nil
}

// withRelasi harus dipanggil dengan lock terpegang.
func (r laporanRepo) withRelasi(x *model.Laporan) model.Laporan {
	cp := *x
	if u, ok := r.s.users[x.UserID]; ok {
		cp.User = *u
	}
	if x.ReviewedByID != nil {
		if u, ok := r.s.users[*x.ReviewedByID]; ok {
			rv := *u
			cp.ReviewedBy = &rv
		}
	}
	return cp
}

func (r laporanRepo) GetByID(id uint) (*model.Laporan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.laporan[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.withRelasi(x)
	return &cp, nil
}

func (r laporanRepo) GetByFileID(fileID string) (*model.Laporan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.laporan {
		if x.FileID == fileID {
			cp := *x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r laporanRepo) GetByUser(userID uint) ([]model.Laporan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Laporan
	for _, x := range r.s.laporan {
		if x.UserID == userID {
			out = append(out, *x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r laporanRepo) GetAll() ([]model.Laporan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Laporan
	for _, x := range r.s.laporan {
		out = append(out, r.withRelasi(x))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r laporanRepo) CountByUser() (map[uint]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[uint]int64{}
	for _, x := range r.s.laporan {
		out[x.UserID]++
	}
	return out, nil
}

type feedbackRepo struct{ s *Store }

func (r feedbackRepo) Create(f *model.Feedback) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.next()
	f.CreatedAt = time.Now()
	r.s.feedback = append(r.s.feedback, *f)
	return nil
}

func (r feedbackRepo) GetByUser(userID uint) ([]model.Feedback, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Feedback
	for i := len(r.s.feedback) - 1; i >= 0; i-- {
		if r.s.feedback[i].UserID == userID {
			out = append(out, r.s.feedback[i])
		}
	}
	return out, nil
}

type lokasiRepo struct{ s *Store }

func (r lokasiRepo) GetAll() ([]model.Lokasi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Lokasi
	for _, x := range r.s.lokasi {
		out = append(out, *x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r lokasiRepo) Create(l *model.Lokasi) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.next()
	cp := *l
	r.s.lokasi[l.ID] = &cp
	return nil
}

func (r lokasiRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lokasi[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.lokasi, id)
	return nil
}

type dashboardRepo struct{ s *Store }

func (r dashboardRepo) GetDashboardStats(date string) (*repository.DashboardStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := &repository.DashboardStats{}
	for _, u := range r.s.users {
		if u.Role == model.RolePeserta {
			st.TotalPeserta++
		}
	}
	for _, l := range r.s.laporan {
		st.LaporanMasuk++
		switch l.Status {
		case laporan.Sesuai:
			st.LaporanSesuai++
		case laporan.Revisi:
			st.LaporanRevisi++
		default:
			st.LaporanPending++
		}
	}
	for _, p := range r.s.presensi {
		if p.Tanggal != date {
			continue
		}
		if p.JamMasuk != "" {
			st.HadirHariIni++
		}
		if p.JamKeluar != "" {
			st.KeluarHariIni++
		}
	}
	return st, nil
}
