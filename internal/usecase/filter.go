package usecase

import (
	"sort"
	"strings"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
)

const (
	SortTerbaru = "terbaru"
	SortTerlama = "terlama"

	DefaultLimit = 10
	MaxLimit     = 100
)

// LaporanFilter mengikuti filter rekap laporan di dashboard admin.
type LaporanFilter struct {
	Search  string // nama, email, atau judul
	Tanggal string // YYYY-MM-DD (WIB), dibandingkan dengan tanggal upload
	Sort    string // terbaru | terlama
	Page    int
	Limit   int
}

type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// FilterLaporan: search case-insensitive, tanggal harus sama persis, lalu diurutkan.
func FilterLaporan(list []model.Laporan, f LaporanFilter) []model.Laporan {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	tanggal := strings.TrimSpace(f.Tanggal)

	out := make([]model.Laporan, 0, len(list))
	for _, l := range list {
		if q != "" {
			hay := strings.ToLower(l.User.Name + " " + l.User.Email + " " + l.Judul)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if tanggal != "" && presensi.Date(l.CreatedAt) != tanggal {
			continue
		}
		out = append(out, l)
	}

	terlama := strings.EqualFold(f.Sort, SortTerlama)
	sort.SliceStable(out, func(i, j int) bool {
		if terlama {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Paginate menghitung potongan halaman. Halaman di luar jangkauan dijepit ke halaman terakhir.
func Paginate(total, page, limit int) (Pagination, int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}

	return Pagination{
		Page:       page,
		PerPage:    limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, start, end
}
