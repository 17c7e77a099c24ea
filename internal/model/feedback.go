package model

import "time"

type Feedback struct {
	ID        uint      `json:"_id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"` // peserta penerima
	AdminID   uint      `json:"adminId"`
	Feedback  string    `json:"feedback" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`

	User  User `json:"-" gorm:"foreignKey:UserID"`
	Admin User `json:"-" gorm:"foreignKey:AdminID"`
}
