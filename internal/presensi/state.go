package presensi

import "errors"

// DayState adalah status presensi satu peserta pada satu hari.
type DayState int

const (
	NoCheckIn DayState = iota
	CheckedIn
	CheckedOut
)

var (
	ErrSudahMasuk   = errors.New("Anda sudah melakukan presensi masuk hari ini")
	ErrBelumMasuk   = errors.New("Anda belum melakukan presensi masuk hari ini")
	ErrSudahKeluar  = errors.New("Anda sudah melakukan presensi keluar hari ini")
	ErrUnknownState = errors.New("aksi presensi tidak dikenal")
)

func StateOf(jamMasuk, jamKeluar string) DayState {
	switch {
	case jamMasuk == "":
		return NoCheckIn
	case jamKeluar == "":
		return CheckedIn
	default:
		return CheckedOut
	}
}

func (s DayState) String() string {
	switch s {
	case CheckedIn:
		return "SUDAH_MASUK"
	case CheckedOut:
		return "SELESAI"
	default:
		return "BELUM_ABSEN"
	}
}

// Next: NoCheckIn -masuk-> CheckedIn -keluar-> CheckedOut. Tidak ada lompatan maupun mundur.
func (s DayState) Next(action Action) (DayState, error) {
	switch action {
	case Masuk:
		if s != NoCheckIn {
			return s, ErrSudahMasuk
		}
		return CheckedIn, nil
	case Keluar:
		switch s {
		case NoCheckIn:
			return s, ErrBelumMasuk
		case CheckedOut:
			return s, ErrSudahKeluar
		}
		return CheckedOut, nil
	}
	return s, ErrUnknownState
}
