package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
	"magang-backend/internal/repository"

	"gorm.io/gorm"
)

// WindowError: presensi di luar jam yang diizinkan.
type WindowError struct {
	Decision presensi.Decision
}

func (e *WindowError) Error() string {
	return e.Decision.Message()
}

type PresensiUsecase struct {
	repo       repository.PresensiRepository
	lokasiRepo repository.LokasiRepository
	gate       *presensi.Gate
	now        func() time.Time
}

func NewPresensiUsecase(repo repository.PresensiRepository, lokasiRepo repository.LokasiRepository, gate *presensi.Gate) *PresensiUsecase {
	return &PresensiUsecase{repo: repo, lokasiRepo: lokasiRepo, gate: gate, now: time.Now}
}

// WithClock mengganti sumber waktu (untuk test).
func (u *PresensiUsecase) WithClock(now func() time.Time) *PresensiUsecase {
	u.now = now
	return u
}

type Koordinat struct {
	Latitude  float64
	Longitude float64
}

type HasilPresensi struct {
	Presensi *model.Presensi   `json:"data"`
	Decision presensi.Decision `json:"window"`
	Jarak    float64           `json:"jarak,omitempty"`
}

// HariIni = presensi hari ini + status gerbang jam untuk UI.
type HariIni struct {
	Tanggal      string              `json:"tanggal"`
	Status       string              `json:"status"`
	JamMasuk     string              `json:"jamMasuk,omitempty"`
	JamKeluar    string              `json:"jamKeluar,omitempty"`
	Lokasi       string              `json:"lokasi,omitempty"`
	Data         *model.Presensi     `json:"data"`
	ServerTime   string              `json:"serverTime"`
	CanMasuk     bool                `json:"canMasuk"`
	CanKeluar    bool                `json:"canKeluar"`
	WindowMasuk  presensi.TimeWindow `json:"windowMasuk"`
	WindowKeluar presensi.TimeWindow `json:"windowKeluar"`
}

func (u *PresensiUsecase) Gate() *presensi.Gate {
	return u.gate
}

func (u *PresensiUsecase) HariIni(actor Actor) (*HariIni, error) {
	if !actor.Valid() {
		return nil, ErrUnauthorized
	}
	now := u.now()
	today := presensi.Date(now)

	p, err := u.repo.GetByDate(actor.ID, today)
	if err != nil {
		return nil, err
	}

	masuk := u.gate.EvaluateAt(presensi.Masuk, now)
	keluar := u.gate.EvaluateAt(presensi.Keluar, now)
	state := p.State()

	out := &HariIni{
		Tanggal:      today,
		Status:       state.String(),
		Data:         p,
		ServerTime:   presensi.Clock(now),
		CanMasuk:     masuk.Allowed && state == presensi.NoCheckIn,
		CanKeluar:    keluar.Allowed && state == presensi.CheckedIn,
		WindowMasuk:  masuk.Window,
		WindowKeluar: keluar.Window,
	}
	if p != nil {
		out.JamMasuk = p.JamMasuk
		out.JamKeluar = p.JamKeluar
		out.Lokasi = p.LokasiMasuk
	}
	return out, nil
}

func (u *PresensiUsecase) Masuk(actor Actor, k Koordinat) (*HasilPresensi, error) {
	return u.absen(actor, presensi.Masuk, k)
}

func (u *PresensiUsecase) Keluar(actor Actor, k Koordinat) (*HasilPresensi, error) {
	return u.absen(actor, presensi.Keluar, k)
}

func (u *PresensiUsecase) absen(actor Actor, action presensi.Action, k Koordinat) (*HasilPresensi, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}
	if k.Latitude < -90 || k.Latitude > 90 || k.Longitude < -180 || k.Longitude > 180 {
		return nil, invalid("Koordinat tidak valid")
	}

	// 1. Cek jam (gerbang di server adalah penentu akhir)
	now := u.now()
	decision := u.gate.EvaluateAt(action, now)
	if !decision.Allowed {
		return nil, &WindowError{Decision: decision}
	}

	// 2. Cek status hari ini
	today := presensi.Date(now)
	p, err := u.repo.GetByDate(actor.ID, today)
	if err != nil {
		return nil, err
	}
	if _, err := p.State().Next(action); err != nil {
		return nil, err
	}

	// 3. Validasi radius kantor (tidak memblokir, hanya ditandai)
	status, jarak, lokasiID := u.cekLokasi(k)
	koordinat := fmt.Sprintf("%f,%f", k.Latitude, k.Longitude)
	lat, lng := k.Latitude, k.Longitude

	if action == presensi.Masuk {
		p = &model.Presensi{
			UserID:            actor.ID,
			Tanggal:           today,
			Bulan:             now.In(presensi.WIB).Format("01"),
			Tahun:             now.In(presensi.WIB).Format("2006"),
			LokasiID:          lokasiID,
			JamMasuk:          decision.Now,
			LatitudeMasuk:     &lat,
			LongitudeMasuk:    &lng,
			LokasiMasuk:       koordinat,
			StatusLokasiMasuk: status,
			Keterangan:        "hadir",
		}
		if err := u.repo.Create(p); err != nil {
			// unique (user_id, tanggal) menahan double check-in dari tab/perangkat lain
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			log.Printf("[PRESENSI] gagal simpan masuk user=%d: %v", actor.ID, err)
			return nil, err
		}
	} else {
		p.JamKeluar = decision.Now
		p.LatitudeKeluar = &lat
		p.LongitudeKeluar = &lng
		p.LokasiKeluar = koordinat
		p.StatusLokasiKeluar = status
		if err := u.repo.Update(p); err != nil {
			return nil, err
		}
	}

	return &HasilPresensi{Presensi: p, Decision: decision, Jarak: jarak}, nil
}

func (u *PresensiUsecase) cekLokasi(k Koordinat) (string, float64, *uint) {
	if u.lokasiRepo == nil {
		return "", 0, nil
	}
	kantor, err := u.lokasiRepo.GetAll()
	if err != nil {
		log.Printf("[PRESENSI] gagal ambil lokasi kantor: %v", err)
		return "", 0, nil
	}
	return presensi.CekLokasi(k.Latitude, k.Longitude, model.TitikKantor(kantor))
}

func (u *PresensiUsecase) Riwayat(actor Actor) ([]model.Presensi, error) {
	if !actor.Valid() {
		return nil, ErrUnauthorized
	}
	return u.repo.GetHistory(actor.ID)
}

// Rekap untuk admin, opsional difilter nama/email peserta.
func (u *PresensiUsecase) Rekap(actor Actor, search string) ([]model.PresensiView, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	list, err := u.repo.GetAll(search)
	if err != nil {
		return nil, err
	}
	out := make([]model.PresensiView, 0, len(list))
	for _, p := range list {
		out = append(out, p.View())
	}
	return out, nil
}

// IsStateError: error transisi status harian (sudah masuk / belum masuk / sudah keluar).
func IsStateError(err error) bool {
	return errors.Is(err, presensi.ErrSudahMasuk) ||
		errors.Is(err, presensi.ErrBelumMasuk) ||
		errors.Is(err, presensi.ErrSudahKeluar)
}
