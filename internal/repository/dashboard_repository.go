package repository

import (
	"magang-backend/internal/laporan"
	"magang-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalPeserta   int64 `json:"totalPeserta"`
	LaporanMasuk   int64 `json:"laporanMasuk"`
	LaporanPending int64 `json:"laporanPending"`
	LaporanSesuai  int64 `json:"laporanSesuai"`
	LaporanRevisi  int64 `json:"laporanRevisi"`
	HadirHariIni   int64 `json:"hadirHariIni"`
	KeluarHariIni  int64 `json:"keluarHariIni"`
}

type DashboardRepository interface {
	GetDashboardStats(date string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// 1. Total Peserta
	if err := r.db.Model(&model.User{}).Where("role = ?", model.RolePeserta).Count(&stats.TotalPeserta).Error; err != nil {
		return nil, err
	}

	// 2. Laporan per status
	var perStatus []struct {
		Status laporan.Status
		Count  int64
	}
	if err := r.db.Model(&model.Laporan{}).
		Group("status").Select("status, count(*) as count").Scan(&perStatus).Error; err != nil {
		return nil, err
	}
	for _, s := range perStatus {
		stats.LaporanMasuk += s.Count
		switch s.Status {
		case laporan.Sesuai:
			stats.LaporanSesuai = s.Count
		case laporan.Revisi:
			stats.LaporanRevisi = s.Count
		default:
			stats.LaporanPending += s.Count
		}
	}

	// 3. Presensi hari ini
	if err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND jam_masuk <> ''", date).Count(&stats.HadirHariIni).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND jam_keluar <> ''", date).Count(&stats.KeluarHariIni).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
