package usecase

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"magang-backend/internal/laporan"
	"magang-backend/internal/model"
	"magang-backend/internal/repository/repotest"
	"magang-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type laporanFixture struct {
	store   *repotest.Store
	files   *storage.LocalStore
	uc      *LaporanUsecase
	peserta Actor
	lain    Actor
	admin   Actor
	now     time.Time
}

func newLaporanFixture(t *testing.T) *laporanFixture {
	t.Helper()
	files, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	f := &laporanFixture{store: repotest.NewStore(), files: files, now: wib("10:00:00")}
	p := f.store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	l := f.store.AddUser("Budi", "budi@example.com", model.RolePeserta)
	a := f.store.AddUser("Admin", "admin@example.com", model.RoleAdmin)
	f.peserta = Actor{ID: p.ID, Email: p.Email, Role: p.Role}
	f.lain = Actor{ID: l.ID, Email: l.Email, Role: l.Role}
	f.admin = Actor{ID: a.ID, Email: a.Email, Role: a.Role}

	f.uc = NewLaporanUsecase(f.store.Laporan(), files, 4).WithClock(func() time.Time { return f.now })
	return f
}

func pdf(n int) FileInput {
	body := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), n)...)
	return FileInput{Name: "laporan.pdf", Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func (f *laporanFixture) submit(t *testing.T, actor Actor) *model.Laporan {
	t.Helper()
	l, err := f.uc.Submit(actor, UploadInput{Judul: "Minggu 1", Deskripsi: "Rekap kegiatan", File: pdf(128)})
	require.NoError(t, err)
	return l
}

func TestLaporanSubmit(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)

	assert.Equal(t, laporan.Pending, l.Status)
	assert.Empty(t, l.AdminCatatan)
	assert.Nil(t, l.ReviewedAt)
	assert.Equal(t, "laporan.pdf", l.OriginalName)
	assert.Equal(t, "application/pdf", l.MimeType)
	assert.True(t, strings.HasSuffix(l.FileID, ".pdf"))

	own, err := f.uc.ListOwn(f.peserta)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.False(t, own[0].Reviewed)

	own, err = f.uc.ListOwn(f.lain)
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestLaporanSubmitValidasi(t *testing.T) {
	f := newLaporanFixture(t)

	_, err := f.uc.Submit(f.peserta, UploadInput{Judul: "  ", File: pdf(10)})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.uc.Submit(f.peserta, UploadInput{Judul: "x"})
	assert.ErrorAs(t, err, &verr)

	_, err = f.uc.Submit(f.admin, UploadInput{Judul: "x", File: pdf(10)})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Submit(Actor{}, UploadInput{Judul: "x", File: pdf(10)})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLaporanSubmitTerlaluBesar(t *testing.T) {
	f := newLaporanFixture(t)
	five := 5 * 1024 * 1024

	_, err := f.uc.Submit(f.peserta, UploadInput{Judul: "x", File: FileInput{
		Name: "besar.pdf", Size: int64(five), Body: bytes.NewReader(make([]byte, five)),
	}})
	var serr *laporan.SizeError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "4MB")
	assert.Contains(t, err.Error(), "5.00MB")

	// ukuran dari client tidak jujur: tetap ditolak setelah dibaca
	_, err = f.uc.Submit(f.peserta, UploadInput{Judul: "x", File: FileInput{
		Name: "besar.pdf", Size: -1, Body: bytes.NewReader(make([]byte, five)),
	}})
	require.ErrorAs(t, err, &serr)

	all, err := f.uc.ListOwn(f.peserta)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLaporanSubmitBase64(t *testing.T) {
	f := newLaporanFixture(t)
	raw := append([]byte("%PDF-1.4\n"), []byte("isi laporan")...)

	l, err := f.uc.SubmitBase64(f.peserta, Base64Input{
		Filename: "tugas.pdf",
		Base64:   "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(raw),
		Judul:    "Tugas",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(raw)), l.Size)

	rc, _, err := f.uc.Download(f.peserta, l.FileID)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = f.uc.SubmitBase64(f.peserta, Base64Input{Filename: "x.pdf", Base64: "%%%", Judul: "x"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	big := base64.StdEncoding.EncodeToString(make([]byte, 5*1024*1024))
	_, err = f.uc.SubmitBase64(f.peserta, Base64Input{Filename: "x.pdf", Base64: big, Judul: "x"})
	var serr *laporan.SizeError
	assert.ErrorAs(t, err, &serr)
}

func TestLaporanSubmitBase64BerbarisTepatDiBatas(t *testing.T) {
	f := newLaporanFixture(t)
	raw := append([]byte("%PDF-1.4\n"), make([]byte, 4*1024*1024-9)...)
	enc := base64.StdEncoding.EncodeToString(raw)

	// format MIME: 76 karakter per baris dipisah \r\n
	var wrapped strings.Builder
	for len(enc) > 76 {
		wrapped.WriteString(enc[:76] + "\r\n")
		enc = enc[76:]
	}
	wrapped.WriteString(enc)

	l, err := f.uc.SubmitBase64(f.peserta, Base64Input{Filename: "tugas.pdf", Base64: wrapped.String(), Judul: "Tepat 4MB"})
	require.NoError(t, err)
	assert.Equal(t, int64(4*1024*1024), l.Size)

	lebih := base64.StdEncoding.EncodeToString(make([]byte, 4*1024*1024+1))
	_, err = f.uc.SubmitBase64(f.peserta, Base64Input{Filename: "x.pdf", Base64: lebih, Judul: "x"})
	var serr *laporan.SizeError
	assert.ErrorAs(t, err, &serr)
}

func TestDecodedSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 1024} {
		enc := base64.StdEncoding.EncodeToString(make([]byte, n))
		assert.Equal(t, int64(n), decodedSize(enc), "n=%d", n)
	}
}

func TestLaporanReviewLaluResubmit(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)
	oldFile := l.FileID

	reviewAt := f.now
	v, err := f.uc.Review(f.admin, l.ID, "revisi", "Perbaiki cover")
	require.NoError(t, err)
	assert.Equal(t, laporan.Revisi, v.Status)
	assert.Equal(t, "Perbaiki cover", v.AdminCatatan)
	require.NotNil(t, v.ReviewedAt)
	assert.False(t, v.ReviewedAt.Before(reviewAt))
	require.NotNil(t, v.ReviewerBy)
	assert.Equal(t, "Admin", v.ReviewerBy.Name)

	updated, err := f.uc.ResubmitFile(f.peserta, l.ID, pdf(256))
	require.NoError(t, err)
	assert.Equal(t, laporan.Pending, updated.Status)
	assert.NotEqual(t, oldFile, updated.FileID)
	assert.Equal(t, "Perbaiki cover", updated.AdminCatatan)

	// file lama sudah dibersihkan
	_, err = f.files.Open(oldFile)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// sekarang pending: resubmit lagi ditolak
	_, err = f.uc.ResubmitFile(f.peserta, l.ID, pdf(10))
	assert.ErrorIs(t, err, laporan.ErrResubmit)
}

func TestLaporanResubmitHanyaRevisi(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)

	_, err := f.uc.ResubmitFile(f.peserta, l.ID, pdf(10))
	assert.ErrorIs(t, err, laporan.ErrResubmit)

	_, err = f.uc.Review(f.admin, l.ID, "sesuai", "Oke")
	require.NoError(t, err)
	_, err = f.uc.ResubmitFile(f.peserta, l.ID, pdf(10))
	assert.ErrorIs(t, err, laporan.ErrResubmit)

	_, err = f.uc.Review(f.admin, l.ID, "revisi", "Tambah lampiran")
	require.NoError(t, err)
	_, err = f.uc.ResubmitFile(f.lain, l.ID, pdf(10))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLaporanReviewDariStatusApapun(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)

	for _, st := range []string{"sesuai", "pending", "revisi", "sesuai"} {
		v, err := f.uc.Review(f.admin, l.ID, st, "catatan "+st)
		require.NoError(t, err)
		assert.Equal(t, laporan.Status(st), v.Status)
		assert.Equal(t, "catatan "+st, v.AdminCatatan)
	}

	_, err := f.uc.Review(f.admin, l.ID, "ditolak", "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.uc.Review(f.peserta, l.ID, "sesuai", "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Review(f.admin, 9999, "sesuai", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLaporanUpdateDescriptionDanDelete(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)
	_, err := f.uc.Review(f.admin, l.ID, "sesuai", "Bagus")
	require.NoError(t, err)

	updated, err := f.uc.UpdateDescription(f.peserta, l.ID, "Deskripsi baru")
	require.NoError(t, err)
	assert.Equal(t, "Deskripsi baru", updated.Deskripsi)
	assert.Equal(t, laporan.Sesuai, updated.Status)

	_, err = f.uc.UpdateDescription(f.lain, l.ID, "x")
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, f.uc.Delete(f.lain, l.ID), ErrForbidden)
	require.NoError(t, f.uc.Delete(f.peserta, l.ID))

	_, err = f.files.Open(l.FileID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, f.uc.Delete(f.peserta, l.ID), ErrNotFound)
}

func TestLaporanDownloadOtorisasi(t *testing.T) {
	f := newLaporanFixture(t)
	l := f.submit(t, f.peserta)

	rc, _, err := f.uc.Download(f.admin, l.FileID)
	require.NoError(t, err)
	rc.Close()

	_, _, err = f.uc.Download(f.lain, l.FileID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = f.uc.Download(Actor{}, l.FileID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = f.uc.Download(f.peserta, "tidak-ada.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLaporanListAllFilterDanPaginasi(t *testing.T) {
	f := newLaporanFixture(t)
	base := wib("10:00:00")
	for i := 0; i < 12; i++ {
		l := &model.Laporan{UserID: f.peserta.ID, Judul: "Minggu", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, f.store.Laporan().Create(l))
	}
	require.NoError(t, f.store.Laporan().Create(&model.Laporan{
		UserID: f.lain.ID, Judul: "Laporan Budi", CreatedAt: base.AddDate(0, 0, -1),
	}))

	page, err := f.uc.ListAll(f.admin, LaporanFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 13, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNext)

	page, err = f.uc.ListAll(f.admin, LaporanFilter{Search: "BUDI"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Laporan Budi", page.Data[0].Judul)
	require.NotNil(t, page.Data[0].UserRef)
	assert.Equal(t, "budi@example.com", page.Data[0].UserRef.Email)

	page, err = f.uc.ListAll(f.admin, LaporanFilter{Tanggal: "2026-10-14"})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	page, err = f.uc.ListAll(f.admin, LaporanFilter{Sort: "terlama", Page: 9, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Page)
	assert.Len(t, page.Data, 3)
	assert.False(t, page.Pagination.HasNext)

	_, err = f.uc.ListAll(f.peserta, LaporanFilter{})
	assert.ErrorIs(t, err, ErrForbidden)
}
