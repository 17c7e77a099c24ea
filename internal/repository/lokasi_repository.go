package repository

import (
	"magang-backend/internal/model"

	"gorm.io/gorm"
)

type LokasiRepository interface {
	GetAll() ([]model.Lokasi, error)
	Create(lokasi *model.Lokasi) error
	Delete(id uint) error
}

type lokasiRepository struct {
	db *gorm.DB
}

func NewLokasiRepository(db *gorm.DB) LokasiRepository {
	return &lokasiRepository{db}
}

func (r *lokasiRepository) GetAll() ([]model.Lokasi, error) {
	var list []model.Lokasi
	err := r.db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *lokasiRepository) Create(lokasi *model.Lokasi) error {
	return r.db.Create(lokasi).Error
}

func (r *lokasiRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Lokasi{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
