package usecase

import (
	"math"
	"sort"
	"strings"

	"magang-backend/internal/model"
	"magang-backend/internal/repository"
)

const (
	// target keaktifan: 90 hari hadir dan 10 laporan
	TargetHadir = 90
	TargetTugas = 10
)

type PesertaStat struct {
	ID        uint   `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Hadir     int64  `json:"hadir"`
	Tugas     int64  `json:"tugas"`
	Keaktifan int    `json:"keaktifan"`
}

type PesertaUsecase struct {
	userRepo     repository.UserRepository
	presensiRepo repository.PresensiRepository
	laporanRepo  repository.LaporanRepository
}

func NewPesertaUsecase(userRepo repository.UserRepository, presensiRepo repository.PresensiRepository, laporanRepo repository.LaporanRepository) *PesertaUsecase {
	return &PesertaUsecase{userRepo: userRepo, presensiRepo: presensiRepo, laporanRepo: laporanRepo}
}

// Keaktifan = rata-rata capaian hadir dan tugas terhadap target, dalam persen 0-100.
func Keaktifan(hadir, tugas int64) int {
	score := (float64(hadir)/TargetHadir + float64(tugas)/TargetTugas) / 2 * 100
	v := int(math.Round(score))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// List untuk picker feedback (ringkas).
func (u *PesertaUsecase) List(actor Actor, search string) ([]model.UserRef, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := u.userRepo.GetPeserta(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]model.UserRef, 0, len(users))
	for _, usr := range users {
		out = append(out, *usr.Ref())
	}
	return out, nil
}

// Stats untuk halaman manajemen peserta. sortBy: name | hadir | tugas, order: asc | desc.
func (u *PesertaUsecase) Stats(actor Actor, search, sortBy, order string) ([]PesertaStat, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := u.userRepo.GetPeserta(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	hadir, err := u.presensiRepo.CountHadirByUser()
	if err != nil {
		return nil, err
	}
	tugas, err := u.laporanRepo.CountByUser()
	if err != nil {
		return nil, err
	}

	out := make([]PesertaStat, 0, len(users))
	for _, usr := range users {
		h, t := hadir[usr.ID], tugas[usr.ID]
		out = append(out, PesertaStat{
			ID:        usr.ID,
			Name:      usr.Name,
			Email:     usr.Email,
			Hadir:     h,
			Tugas:     t,
			Keaktifan: Keaktifan(h, t),
		})
	}

	SortPeserta(out, sortBy, order)
	return out, nil
}

func SortPeserta(list []PesertaStat, sortBy, order string) {
	desc := strings.EqualFold(order, "desc")
	less := func(i, j int) bool {
		switch strings.ToLower(sortBy) {
		case "hadir":
			return list[i].Hadir < list[j].Hadir
		case "tugas":
			return list[i].Tugas < list[j].Tugas
		default:
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}

func requireRole(actor Actor, role string) error {
	if !actor.Valid() {
		return ErrUnauthorized
	}
	if actor.Role != role {
		return ErrForbidden
	}
	return nil
}
