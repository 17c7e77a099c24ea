package presensi

import "math"

const (
	LokasiValid   = "VALID"
	LokasiInvalid = "INVALID"
)

// Titik kantor beserta radius toleransi (meter).
type Titik struct {
	ID          uint
	Latitude    float64
	Longitude   float64
	RadiusMeter float64
}

// CekLokasi mengembalikan VALID jika koordinat masuk radius salah satu kantor, beserta jarak
// terdekat. Tanpa kantor terdaftar statusnya kosong.
func CekLokasi(lat, lng float64, kantor []Titik) (status string, jarak float64, lokasiID *uint) {
	if len(kantor) == 0 {
		return "", 0, nil
	}

	status = LokasiInvalid
	jarak = math.MaxFloat64
	for i := range kantor {
		k := &kantor[i]
		d := Haversine(lat, lng, k.Latitude, k.Longitude)
		if d <= k.RadiusMeter {
			return LokasiValid, d, &k.ID
		}
		if d < jarak {
			jarak = d
		}
	}
	return status, jarak, nil
}

// Haversine menghitung jarak dua titik koordinat dalam meter.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371000 // radius bumi (meter)
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
