package repository

import (
	"magang-backend/internal/model"

	"gorm.io/gorm"
)

type PresensiRepository interface {
	Create(p *model.Presensi) error
	Update(p *model.Presensi) error
	GetByDate(userID uint, tanggal string) (*model.Presensi, error)
	GetHistory(userID uint) ([]model.Presensi, error)
	GetAll(search string) ([]model.Presensi, error)
	CountHadirByUser() (map[uint]int64, error)
}

type presensiRepository struct {
	db *gorm.DB
}

func NewPresensiRepository(db *gorm.DB) PresensiRepository {
	return &presensiRepository{db}
}

func (r *presensiRepository) Create(p *model.Presensi) error {
	return r.db.Create(p).Error
}

func (r *presensiRepository) Update(p *model.Presensi) error {
	return r.db.Save(p).Error
}

// GetByDate mengembalikan (nil, nil) jika belum ada presensi di tanggal tsb.
func (r *presensiRepository) GetByDate(userID uint, tanggal string) (*model.Presensi, error) {
	var p model.Presensi
	err := r.db.Where("user_id = ? AND tanggal = ?", userID, tanggal).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *presensiRepository) GetHistory(userID uint) ([]model.Presensi, error) {
	var history []model.Presensi
	err := r.db.Where("user_id = ?", userID).Order("tanggal desc").Find(&history).Error
	return history, err
}

func (r *presensiRepository) GetAll(search string) ([]model.Presensi, error) {
	var list []model.Presensi
	query := r.db.Preload("User")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Joins("JOIN users ON users.id = presensis.user_id").
			Where("users.name LIKE ? OR users.email LIKE ?", searchPattern, searchPattern)
	}

	err := query.Order("presensis.tanggal desc").Find(&list).Error
	return list, err
}

// CountHadirByUser: jumlah hari dengan jam masuk terisi per peserta.
func (r *presensiRepository) CountHadirByUser() (map[uint]int64, error) {
	var rows []struct {
		UserID uint
		Count  int64
	}
	err := r.db.Model(&model.Presensi{}).
		Where("jam_masuk <> ''").
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
