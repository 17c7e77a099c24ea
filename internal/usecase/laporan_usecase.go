package usecase

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"magang-backend/internal/laporan"
	"magang-backend/internal/model"
	"magang-backend/internal/repository"
	"magang-backend/internal/storage"

	"gorm.io/gorm"
)

type LaporanUsecase struct {
	repo  repository.LaporanRepository
	store storage.FileStore
	maxMB int
	now   func() time.Time
}

func NewLaporanUsecase(repo repository.LaporanRepository, store storage.FileStore, maxMB int) *LaporanUsecase {
	if maxMB <= 0 {
		maxMB = laporan.DefaultMaxMB
	}
	return &LaporanUsecase{repo: repo, store: store, maxMB: maxMB, now: time.Now}
}

func (u *LaporanUsecase) WithClock(now func() time.Time) *LaporanUsecase {
	u.now = now
	return u
}

func (u *LaporanUsecase) MaxMB() int {
	return u.maxMB
}

// FileInput: file dari multipart. Size -1 jika tidak diketahui.
type FileInput struct {
	Name string
	Size int64
	Body io.Reader
}

type UploadInput struct {
	Judul     string
	Deskripsi string
	File      FileInput
}

type Base64Input struct {
	Filename  string
	Base64    string
	Judul     string
	Deskripsi string
	MimeType  string
}

// LaporanPage = hasil list admin yang dipaginasi.
type LaporanPage struct {
	Data       []model.LaporanView `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// saveFile menyimpan file dan memastikan ukuran akhirnya tidak melewati batas,
// termasuk saat Size dari client tidak jujur.
func (u *LaporanUsecase) saveFile(f FileInput) (model.StoredFile, error) {
	if f.Body == nil || strings.TrimSpace(f.Name) == "" {
		return model.StoredFile{}, invalid("File wajib diupload")
	}
	if f.Size >= 0 {
		if err := laporan.CheckSize(f.Size, u.maxMB); err != nil {
			return model.StoredFile{}, err
		}
	}

	limit := laporan.MaxBytes(u.maxMB)
	stored, err := u.store.Save(f.Name, io.LimitReader(f.Body, limit+1))
	if err != nil {
		return model.StoredFile{}, err
	}
	if stored.Size == 0 {
		u.removeFile(stored.FileID)
		return model.StoredFile{}, invalid("File kosong")
	}
	if err := laporan.CheckSize(stored.Size, u.maxMB); err != nil {
		u.removeFile(stored.FileID)
		return model.StoredFile{}, err
	}
	return stored, nil
}

func (u *LaporanUsecase) removeFile(fileID string) {
	if fileID == "" {
		return
	}
	if err := u.store.Remove(fileID); err != nil {
		log.Printf("[LAPORAN] gagal hapus file %s: %v", fileID, err)
	}
}

func (u *LaporanUsecase) Submit(actor Actor, in UploadInput) (*model.Laporan, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}
	judul := strings.TrimSpace(in.Judul)
	if judul == "" {
		return nil, invalid("Judul wajib diisi")
	}

	stored, err := u.saveFile(in.File)
	if err != nil {
		return nil, err
	}

	l := &model.Laporan{
		UserID:    actor.ID,
		Judul:     judul,
		Deskripsi: strings.TrimSpace(in.Deskripsi),
		Status:    laporan.Pending,
	}
	l.AttachFile(stored)

	if err := u.repo.Create(l); err != nil {
		u.removeFile(stored.FileID)
		return nil, err
	}
	return l, nil
}

// SubmitBase64 menerima isi file base64 (boleh dengan prefix data URL).
func (u *LaporanUsecase) SubmitBase64(actor Actor, in Base64Input) (*model.Laporan, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}

	data := strings.TrimSpace(in.Base64)
	if i := strings.Index(data, ","); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+1:]
	}
	if data == "" {
		return nil, invalid("File wajib diupload")
	}

	// base64 yang dibungkus per baris: \r\n diabaikan decoder, jadi dibuang sebelum hitung ukuran
	data = stripNewlines.Replace(data)

	// tolak lebih awal sebelum decode kalau hasil decode pasti melebihi batas
	if err := laporan.CheckSize(decodedSize(data), u.maxMB); err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, invalid("Format base64 tidak valid")
	}

	return u.Submit(actor, UploadInput{
		Judul:     in.Judul,
		Deskripsi: in.Deskripsi,
		File: FileInput{
			Name: in.Filename,
			Size: int64(len(raw)),
			Body: bytes.NewReader(raw),
		},
	})
}

func (u *LaporanUsecase) get(id uint) (*model.Laporan, error) {
	l, err := u.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (u *LaporanUsecase) owned(actor Actor, id uint) (*model.Laporan, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}
	l, err := u.get(id)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(actor.ID) {
		return nil, ErrForbidden
	}
	return l, nil
}

// Review oleh admin, boleh dari status apapun.
func (u *LaporanUsecase) Review(actor Actor, id uint, status, catatan string) (*model.LaporanView, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	st, err := laporan.ParseStatus(status)
	if err != nil {
		return nil, invalid(err.Error())
	}

	l, err := u.get(id)
	if err != nil {
		return nil, err
	}

	l.ApplyReview(st, strings.TrimSpace(catatan), actor.ID, u.now())
	if err := u.repo.Update(l); err != nil {
		return nil, err
	}

	// ambil ulang supaya reviewedBy ikut terisi
	fresh, err := u.get(id)
	if err != nil {
		return nil, err
	}
	v := fresh.View()
	return &v, nil
}

// ResubmitFile: hanya pemilik, hanya saat status revisi. File lama dihapus setelah update sukses.
func (u *LaporanUsecase) ResubmitFile(actor Actor, id uint, f FileInput) (*model.Laporan, error) {
	l, err := u.owned(actor, id)
	if err != nil {
		return nil, err
	}
	if err := laporan.CanResubmit(l.Status); err != nil {
		return nil, err
	}

	stored, err := u.saveFile(f)
	if err != nil {
		return nil, err
	}

	oldFile := l.FileID
	if err := l.ApplyResubmit(stored); err != nil {
		u.removeFile(stored.FileID)
		return nil, err
	}
	if err := u.repo.Update(l); err != nil {
		u.removeFile(stored.FileID)
		return nil, err
	}
	u.removeFile(oldFile)
	return l, nil
}

func (u *LaporanUsecase) UpdateDescription(actor Actor, id uint, deskripsi string) (*model.Laporan, error) {
	l, err := u.owned(actor, id)
	if err != nil {
		return nil, err
	}
	l.SetDeskripsi(strings.TrimSpace(deskripsi))
	if err := u.repo.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *LaporanUsecase) Delete(actor Actor, id uint) error {
	l, err := u.owned(actor, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(l.ID); err != nil {
		return err
	}
	u.removeFile(l.FileID)
	return nil
}

// Download: pemilik atau admin.
func (u *LaporanUsecase) Download(actor Actor, fileID string) (io.ReadCloser, *model.Laporan, error) {
	if !actor.Valid() {
		return nil, nil, ErrUnauthorized
	}
	l, err := u.repo.GetByFileID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if actor.Role != model.RoleAdmin && !l.OwnedBy(actor.ID) {
		return nil, nil, ErrForbidden
	}

	rc, err := u.store.Open(l.FileID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return rc, l, nil
}

func (u *LaporanUsecase) ListOwn(actor Actor) ([]model.LaporanView, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}
	list, err := u.repo.GetByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return model.LaporanViews(list), nil
}

// ListFiltered: semua laporan (admin) setelah filter dan sort, tanpa paginasi. Dipakai juga untuk export.
func (u *LaporanUsecase) ListFiltered(actor Actor, f LaporanFilter) ([]model.Laporan, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	list, err := u.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return FilterLaporan(list, f), nil
}

func (u *LaporanUsecase) ListAll(actor Actor, f LaporanFilter) (*LaporanPage, error) {
	list, err := u.ListFiltered(actor, f)
	if err != nil {
		return nil, err
	}
	p, start, end := Paginate(len(list), f.Page, f.Limit)
	return &LaporanPage{Data: model.LaporanViews(list[start:end]), Pagination: p}, nil
}

var stripNewlines = strings.NewReplacer("\r", "", "\n", "")

// decodedSize menghitung ukuran hasil decode base64 standar tanpa decode.
func decodedSize(data string) int64 {
	n := int64(base64.StdEncoding.DecodedLen(len(data)))
	for i := 0; i < 2 && len(data) > i && data[len(data)-1-i] == '='; i++ {
		n--
	}
	return n
}
