package model

import (
	"time"

	"magang-backend/internal/laporan"
)

// Laporan tugas peserta beserta status review admin.
type Laporan struct {
	ID        uint   `json:"_id" gorm:"primaryKey"`
	UserID    uint   `json:"userId" gorm:"not null;index"`
	Judul     string `json:"judul" gorm:"not null"`
	Deskripsi string `json:"deskripsi" gorm:"type:text"`

	FileID       string `json:"fileId" gorm:"size:64;uniqueIndex"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`

	Status       laporan.Status `json:"status" gorm:"size:10;default:pending;index"`
	AdminCatatan string         `json:"adminCatatan" gorm:"type:text"`
	ReviewedByID *uint          `json:"-"`
	ReviewedAt   *time.Time     `json:"reviewedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User       User  `json:"-" gorm:"foreignKey:UserID"`
	ReviewedBy *User `json:"-" gorm:"foreignKey:ReviewedByID"`
}

// StoredFile adalah metadata file yang sudah tersimpan di storage.
type StoredFile struct {
	FileID       string
	OriginalName string
	MimeType     string
	Size         int64
}

func (l *Laporan) OwnedBy(userID uint) bool {
	return userID != 0 && l.UserID == userID
}

func (l *Laporan) AttachFile(f StoredFile) {
	l.FileID = f.FileID
	l.OriginalName = f.OriginalName
	l.MimeType = f.MimeType
	l.Size = f.Size
}

// ApplyReview boleh dari status apapun (admin bisa reset ke pending). Catatan lama ditimpa.
func (l *Laporan) ApplyReview(status laporan.Status, catatan string, reviewerID uint, at time.Time) {
	l.Status = status
	l.AdminCatatan = catatan
	l.ReviewedByID = &reviewerID
	l.ReviewedAt = &at
}

// ApplyResubmit mengganti file dan mengembalikan status ke pending.
// AdminCatatan sengaja tidak dihapus supaya alasan revisi tetap terlihat.
func (l *Laporan) ApplyResubmit(f StoredFile) error {
	if err := laporan.CanResubmit(l.Status); err != nil {
		return err
	}
	l.AttachFile(f)
	l.Status = laporan.Pending
	return nil
}

func (l *Laporan) SetDeskripsi(deskripsi string) {
	l.Deskripsi = deskripsi
}

// LaporanView = bentuk JSON yang dibaca dashboard (user & reviewer ikut di-embed).
type LaporanView struct {
	Laporan
	Reviewed   bool     `json:"reviewed"`
	UserRef    *UserRef `json:"user,omitempty"`
	ReviewerBy *UserRef `json:"reviewedBy,omitempty"`
}

func (l Laporan) View() LaporanView {
	v := LaporanView{
		Laporan:  l,
		Reviewed: l.Status.Reviewed(),
		UserRef:  l.User.Ref(),
	}
	if l.ReviewedBy != nil {
		v.ReviewerBy = l.ReviewedBy.Ref()
	}
	return v
}

func LaporanViews(list []Laporan) []LaporanView {
	out := make([]LaporanView, 0, len(list))
	for _, l := range list {
		out = append(out, l.View())
	}
	return out
}
