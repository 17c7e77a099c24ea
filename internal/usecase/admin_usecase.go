package usecase

import (
	"errors"
	"strings"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
	"magang-backend/internal/repository"

	"gorm.io/gorm"
)

// AdminUsecase: dashboard dan pengaturan lokasi kantor.
type AdminUsecase struct {
	dashboardRepo repository.DashboardRepository
	lokasiRepo    repository.LokasiRepository
	now           func() time.Time
}

func NewAdminUsecase(dashboardRepo repository.DashboardRepository, lokasiRepo repository.LokasiRepository) *AdminUsecase {
	return &AdminUsecase{dashboardRepo: dashboardRepo, lokasiRepo: lokasiRepo, now: time.Now}
}

func (u *AdminUsecase) WithClock(now func() time.Time) *AdminUsecase {
	u.now = now
	return u
}

func (u *AdminUsecase) Dashboard(actor Actor) (*repository.DashboardStats, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return u.dashboardRepo.GetDashboardStats(presensi.Date(u.now()))
}

type LokasiInput struct {
	NamaLokasi  string
	Alamat      string
	Latitude    float64
	Longitude   float64
	RadiusMeter float64
}

func (u *AdminUsecase) Lokasi(actor Actor) ([]model.Lokasi, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return u.lokasiRepo.GetAll()
}

func (u *AdminUsecase) TambahLokasi(actor Actor, in LokasiInput) (*model.Lokasi, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.NamaLokasi) == "" {
		return nil, invalid("Nama lokasi wajib diisi")
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return nil, invalid("Koordinat tidak valid")
	}
	if in.RadiusMeter <= 0 {
		return nil, invalid("Radius harus lebih dari 0 meter")
	}

	l := &model.Lokasi{
		NamaLokasi:  strings.TrimSpace(in.NamaLokasi),
		Alamat:      strings.TrimSpace(in.Alamat),
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		RadiusMeter: in.RadiusMeter,
	}
	if err := u.lokasiRepo.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *AdminUsecase) HapusLokasi(actor Actor, id uint) error {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return err
	}
	if err := u.lokasiRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
