// Package export membuat file rekap (CSV/XLSX) untuk admin.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var bulanID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Tanggal format "02 Januari 2006" dalam WIB.
func Tanggal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(presensi.WIB)
	return fmt.Sprintf("%02d %s %d", t.Day(), bulanID[t.Month()-1], t.Year())
}

var laporanHeader = []string{"Nama", "Email", "Judul", "Deskripsi", "Tanggal Upload", "Status", "Catatan Admin"}

func laporanRow(l model.Laporan) []string {
	status := string(l.Status)
	if status == "" {
		status = "pending"
	}
	return []string{
		l.User.Name,
		l.User.Email,
		l.Judul,
		l.Deskripsi,
		Tanggal(l.CreatedAt),
		status,
		l.AdminCatatan,
	}
}

func LaporanCSV(w io.Writer, list []model.Laporan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(laporanHeader); err != nil {
		return err
	}
	for _, l := range list {
		if err := cw.Write(laporanRow(l)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func LaporanXLSX(w io.Writer, list []model.Laporan, dibuat time.Time) error {
	rows := make([][]string, 0, len(list))
	for _, l := range list {
		rows = append(rows, laporanRow(l))
	}
	return tabel(w, "Rekap Laporan", "REKAP LAPORAN TUGAS PESERTA", laporanHeader, rows, dibuat)
}

var presensiHeader = []string{"Nama", "Email", "Tanggal", "Jam Masuk", "Status Lokasi Masuk", "Jam Keluar", "Status Lokasi Keluar"}

func PresensiXLSX(w io.Writer, list []model.PresensiView, dibuat time.Time) error {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		var nama, email string
		if p.UserRef != nil {
			nama, email = p.UserRef.Name, p.UserRef.Email
		}
		jamKeluar := p.JamKeluar
		if jamKeluar == "" {
			jamKeluar = "-"
		}
		rows = append(rows, []string{
			nama, email, p.Tanggal, p.JamMasuk, p.StatusLokasiMasuk, jamKeluar, p.StatusLokasiKeluar,
		})
	}
	return tabel(w, "Rekap Presensi", "REKAP PRESENSI PESERTA", presensiHeader, rows, dibuat)
}

// tabel menulis satu sheet: judul di baris 1, header di baris 3, data mulai baris 4.
func tabel(w io.Writer, sheet, judul string, header []string, rows [][]string, dibuat time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}

	// Judul
	f.SetCellValue(sheet, "A1", judul)
	f.MergeCell(sheet, "A1", lastCol+"1")
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", lastCol+"3", headerStyle)

	row := 4
	for _, r := range rows {
		for i, v := range r {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetColWidth(sheet, "A", lastCol, 20)

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Dibuat pada: %s %s WIB", Tanggal(dibuat), presensi.Clock(dibuat)))

	f.DeleteSheet("Sheet1")

	return f.Write(w)
}

// Nama file export, contoh rekap_laporan_2026-10-15.xlsx
func NamaFile(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, presensi.Date(t), ext)
}
