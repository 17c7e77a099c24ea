package repository

import (
	"magang-backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(f *model.Feedback) error
	GetByUser(userID uint) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db}
}

func (r *feedbackRepository) Create(f *model.Feedback) error {
	return r.db.Create(f).Error
}

func (r *feedbackRepository) GetByUser(userID uint) ([]model.Feedback, error) {
	var list []model.Feedback
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}
