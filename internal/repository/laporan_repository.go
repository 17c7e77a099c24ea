package repository

import (
	"magang-backend/internal/model"

	"gorm.io/gorm"
)

type LaporanRepository interface {
	Create(l *model.Laporan) error
	Update(l *model.Laporan) error
	Delete(id uint) error
	GetByID(id uint) (*model.Laporan, error)
	GetByFileID(fileID string) (*model.Laporan, error)
	GetByUser(userID uint) ([]model.Laporan, error)
	GetAll() ([]model.Laporan, error)
	CountByUser() (map[uint]int64, error)
}

type laporanRepository struct {
	db *gorm.DB
}

func NewLaporanRepository(db *gorm.DB) LaporanRepository {
	return &laporanRepository{db}
}

func (r *laporanRepository) Create(l *model.Laporan) error {
	return r.db.Create(l).Error
}

func (r *laporanRepository) Update(l *model.Laporan) error {
	return r.db.Omit("User", "ReviewedBy").Save(l).Error
}

// Delete permanen, laporan yang dihapus peserta tidak disimpan lagi.
func (r *laporanRepository) Delete(id uint) error {
	return r.db.Delete(&model.Laporan{}, id).Error
}

func (r *laporanRepository) GetByID(id uint) (*model.Laporan, error) {
	var l model.Laporan
	err := r.db.Preload("User").Preload("ReviewedBy").First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *laporanRepository) GetByFileID(fileID string) (*model.Laporan, error) {
	var l model.Laporan
	err := r.db.Where("file_id = ?", fileID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *laporanRepository) GetByUser(userID uint) ([]model.Laporan, error) {
	var list []model.Laporan
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *laporanRepository) GetAll() ([]model.Laporan, error) {
	var list []model.Laporan
	err := r.db.Preload("User").Preload("ReviewedBy").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *laporanRepository) CountByUser() (map[uint]int64, error) {
	var rows []struct {
		UserID uint
		Count  int64
	}
	err := r.db.Model(&model.Laporan{}).
		Group("user_id").Select("user_id, count(*) as count").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Count
	}
	return out, nil
}
