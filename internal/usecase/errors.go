package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("Token tidak ditemukan atau tidak valid. Silakan login kembali.")
	ErrForbidden    = errors.New("Akses ditolak")
	ErrNotFound     = errors.New("Data tidak ditemukan")
	ErrConflict     = errors.New("Data sudah ada")
)

// ValidationError: input salah, diselesaikan oleh pemanggil tanpa retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// Actor = identitas pemanggil yang diambil dari token.
type Actor struct {
	ID    uint
	Email string
	Role  string
}

func (a Actor) Valid() bool {
	return a.ID != 0 && a.Role != ""
}
