package presensi

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WIB = Asia/Jakarta. Tidak ada DST, jadi cukup fixed zone (tidak tergantung tzdata di server).
var WIB = time.FixedZone("WIB", 7*60*60)

// HH:mm:ss, HH 00-23, mm/ss 00-59
var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// TimeWindow adalah rentang jam [Start, End] inklusif dalam satu hari (WIB).
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var (
	DefaultMasuk  = TimeWindow{Start: "08:00:00", End: "08:59:59"}
	DefaultKeluar = TimeWindow{Start: "16:00:00", End: "23:59:59"}
)

func ValidClock(value string) bool {
	return clockPattern.MatchString(value)
}

// Validate mengembalikan candidate jika formatnya HH:MM:SS, selain itu fallback.
func Validate(candidate, fallback string) string {
	if ValidClock(candidate) {
		return candidate
	}
	return fallback
}

// ResolveWindow menggabungkan override dengan default. Window yang start > end
// (lintas tengah malam) tidak didukung dan diganti default utuh.
func ResolveWindow(start, end string, fallback TimeWindow) TimeWindow {
	w := TimeWindow{
		Start: Validate(start, fallback.Start),
		End:   Validate(end, fallback.End),
	}
	if Seconds(w.Start) > Seconds(w.End) {
		return fallback
	}
	return w
}

// Seconds mengubah "HH:MM:SS" jadi detik sejak tengah malam. Nilai tidak valid = -1.
func Seconds(clock string) int {
	if !ValidClock(clock) {
		return -1
	}
	parts := strings.Split(clock, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(parts[2])
	return h*3600 + m*60 + s
}

func (w TimeWindow) Contains(now string) bool {
	n := Seconds(now)
	if n < 0 {
		return false
	}
	return Seconds(w.Start) <= n && n <= Seconds(w.End)
}

func (w TimeWindow) String() string {
	return w.Start + " - " + w.End
}

// Clock memformat waktu ke jam WIB "15:04:05".
func Clock(t time.Time) string {
	return t.In(WIB).Format("15:04:05")
}

// Date memformat waktu ke tanggal WIB "2006-01-02".
func Date(t time.Time) string {
	return t.In(WIB).Format("2006-01-02")
}
