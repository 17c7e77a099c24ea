package model

import (
	"time"

	"magang-backend/internal/presensi"
)

// Presensi = satu hari milik satu peserta. Dibuat saat check-in pertama,
// diubah sekali saat check-out, tidak pernah dihapus.
type Presensi struct {
	ID       uint   `json:"_id" gorm:"primaryKey"`
	UserID   uint   `json:"userId" gorm:"not null;uniqueIndex:idx_presensi_user_tanggal"`
	Tanggal  string `json:"tanggal" gorm:"size:10;not null;uniqueIndex:idx_presensi_user_tanggal"` // YYYY-MM-DD (WIB)
	Bulan    string `json:"bulan" gorm:"size:2"`
	Tahun    string `json:"tahun" gorm:"size:4"`
	LokasiID *uint  `json:"lokasiId"` // kantor terdekat yang valid saat masuk

	JamMasuk          string   `json:"jamMasuk,omitempty"`
	LatitudeMasuk     *float64 `json:"latitudeMasuk,omitempty"`
	LongitudeMasuk    *float64 `json:"longitudeMasuk,omitempty"`
	LokasiMasuk       string   `json:"lokasiMasuk,omitempty"` // "lat,lng"
	StatusLokasiMasuk string   `json:"statusLokasiMasuk,omitempty"`

	JamKeluar          string   `json:"jamKeluar,omitempty"`
	LatitudeKeluar     *float64 `json:"latitudeKeluar,omitempty"`
	LongitudeKeluar    *float64 `json:"longitudeKeluar,omitempty"`
	LokasiKeluar       string   `json:"lokasiKeluar,omitempty"`
	StatusLokasiKeluar string   `json:"statusLokasiKeluar,omitempty"`

	// Data lama: hadir/izin/sakit
	Keterangan string `json:"keterangan,omitempty" gorm:"size:10"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (p *Presensi) State() presensi.DayState {
	if p == nil {
		return presensi.NoCheckIn
	}
	return presensi.StateOf(p.JamMasuk, p.JamKeluar)
}

// PresensiView dipakai di rekap admin (presensi + ringkasan user).
type PresensiView struct {
	Presensi
	UserRef *UserRef `json:"user,omitempty"`
}

func (p Presensi) View() PresensiView {
	return PresensiView{Presensi: p, UserRef: p.User.Ref()}
}
