package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RolePeserta = "peserta"
)

type User struct {
	ID        uint           `json:"_id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"size:191;unique;not null"`
	Password  string         `json:"-"`
	Role      string         `json:"role" gorm:"size:20;default:peserta;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRef adalah ringkasan user yang ikut dikirim bersama laporan/presensi.
type UserRef struct {
	ID    uint   `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Ref() *UserRef {
	if u.ID == 0 {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
