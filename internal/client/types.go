package client

import (
	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
)

// Today adalah respon GET /api/presensi/hari-ini.
type Today struct {
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

// WindowConfig mengubah jam yang dipakai server jadi konfigurasi gate lokal.
func (t Today) WindowConfig() presensi.WindowConfig {
	return presensi.WindowConfig{
		MasukStart:  t.WindowMasuk.Start,
		MasukEnd:    t.WindowMasuk.End,
		KeluarStart: t.WindowKeluar.Start,
		KeluarEnd:   t.WindowKeluar.End,
	}
}

type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ReportPage struct {
	Data       []model.LaporanView `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type ParticipantStat struct {
	ID        uint   `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Hadir     int64  `json:"hadir"`
	Tugas     int64  `json:"tugas"`
	Keaktifan int    `json:"keaktifan"`
}

type DashboardStats struct {
	TotalPeserta   int64 `json:"totalPeserta"`
	LaporanMasuk   int64 `json:"laporanMasuk"`
	LaporanPending int64 `json:"laporanPending"`
	LaporanSesuai  int64 `json:"laporanSesuai"`
	LaporanRevisi  int64 `json:"laporanRevisi"`
	HadirHariIni   int64 `json:"hadirHariIni"`
	KeluarHariIni  int64 `json:"keluarHariIni"`
}
