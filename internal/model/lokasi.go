package model

import (
	"time"

	"magang-backend/internal/presensi"
)

// Lokasi kantor untuk validasi radius presensi.
type Lokasi struct {
	ID          uint      `json:"_id" gorm:"primaryKey"`
	NamaLokasi  string    `json:"namaLokasi" gorm:"not null"`
	Alamat      string    `json:"alamat"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RadiusMeter float64   `json:"radiusMeter"`
	CreatedAt   time.Time `json:"createdAt"`
}

func TitikKantor(list []Lokasi) []presensi.Titik {
	out := make([]presensi.Titik, 0, len(list))
	for _, l := range list {
		out = append(out, presensi.Titik{
			ID:          l.ID,
			Latitude:    l.Latitude,
			Longitude:   l.Longitude,
			RadiusMeter: l.RadiusMeter,
		})
	}
	return out
}
