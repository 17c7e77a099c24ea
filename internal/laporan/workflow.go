package laporan

import (
	"errors"
	"fmt"
	"strings"
)

// Status review laporan.
type Status string

const (
	Pending Status = "pending"
	Sesuai  Status = "sesuai"
	Revisi  Status = "revisi"
)

const (
	// DefaultMaxMB batas ukuran file laporan.
	DefaultMaxMB = 4
	// SafeBase64Bytes: di atas ukuran ini overhead base64 (~4/3) sudah melewati batas body.
	SafeBase64Bytes = 3 * 1024 * 1024
)

var (
	ErrInvalidStatus = errors.New("status harus salah satu dari pending, sesuai, revisi")
	ErrResubmit      = errors.New("file hanya bisa diganti jika laporan berstatus revisi")
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case Pending, Sesuai, Revisi:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Reviewed: true jika status sudah bukan pending.
func (s Status) Reviewed() bool {
	return s == Sesuai || s == Revisi
}

// CanResubmit hanya laporan revisi yang boleh diganti filenya.
func CanResubmit(s Status) error {
	if s != Revisi {
		return ErrResubmit
	}
	return nil
}

func MaxBytes(maxMB int) int64 {
	return int64(maxMB) * 1024 * 1024
}

// SizeError: file melebihi batas. Selalu ditolak sebelum ada request ke server.
type SizeError struct {
	Size  int64
	MaxMB int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("Ukuran file terlalu besar. Maksimal %dMB. Ukuran file kamu: %.2fMB",
		e.MaxMB, float64(e.Size)/1024/1024)
}

// CheckSize menolak iff size > maxMB.
func CheckSize(size int64, maxMB int) error {
	if maxMB <= 0 {
		maxMB = DefaultMaxMB
	}
	if size > MaxBytes(maxMB) {
		return &SizeError{Size: size, MaxMB: maxMB}
	}
	return nil
}

func FitsBase64(size int64) bool {
	return size <= SafeBase64Bytes
}
