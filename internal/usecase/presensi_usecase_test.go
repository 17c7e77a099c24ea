package usecase

import (
	"errors"
	"testing"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
	"magang-backend/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// wib membuat waktu dengan jam dinding WIB.
func wib(clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-10-15 "+clock, presensi.WIB)
	if err != nil {
		panic(err)
	}
	return t
}

type presensiFixture struct {
	store   *repotest.Store
	uc      *PresensiUsecase
	peserta Actor
	admin   Actor
	now     time.Time
}

func newPresensiFixture(t *testing.T) *presensiFixture {
	t.Helper()
	f := &presensiFixture{store: repotest.NewStore()}
	p := f.store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	a := f.store.AddUser("Admin", "admin@example.com", model.RoleAdmin)
	f.peserta = Actor{ID: p.ID, Email: p.Email, Role: p.Role}
	f.admin = Actor{ID: a.ID, Email: a.Email, Role: a.Role}

	f.uc = NewPresensiUsecase(f.store.Presensi(), f.store.Lokasi(), presensi.NewGate(presensi.WindowConfig{})).
		WithClock(func() time.Time { return f.now })
	return f
}

var kantorDisdik = Koordinat{Latitude: -0.9471, Longitude: 100.4172}

func TestPresensiMasukDalamWindow(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("08:30:00")

	res, err := f.uc.Masuk(f.peserta, kantorDisdik)
	require.NoError(t, err)
	assert.True(t, res.Decision.Allowed)
	assert.Equal(t, "08:30:00", res.Presensi.JamMasuk)
	assert.Equal(t, "2026-10-15", res.Presensi.Tanggal)
	assert.Equal(t, "10", res.Presensi.Bulan)
	assert.Equal(t, "2026", res.Presensi.Tahun)
	// belum ada kantor terdaftar
	assert.Empty(t, res.Presensi.StatusLokasiMasuk)

	_, err = f.uc.Masuk(f.peserta, kantorDisdik)
	assert.ErrorIs(t, err, presensi.ErrSudahMasuk)
	assert.True(t, IsStateError(err))
}

func TestPresensiMasukDiLuarWindowDitolakServer(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("09:00:00")

	_, err := f.uc.Masuk(f.peserta, kantorDisdik)
	var werr *WindowError
	require.ErrorAs(t, err, &werr)
	assert.False(t, werr.Decision.Allowed)
	assert.Equal(t, "Presensi masuk hanya 08:00:00 - 08:59:59 WIB. Sekarang: 09:00:00 WIB.", err.Error())

	hist, err := f.uc.Riwayat(f.peserta)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestPresensiKeluarTanpaMasuk(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("16:30:00")

	_, err := f.uc.Keluar(f.peserta, kantorDisdik)
	assert.ErrorIs(t, err, presensi.ErrBelumMasuk)
}

func TestPresensiSatuHariPenuh(t *testing.T) {
	f := newPresensiFixture(t)

	f.now = wib("08:05:00")
	_, err := f.uc.Masuk(f.peserta, kantorDisdik)
	require.NoError(t, err)

	today, err := f.uc.HariIni(f.peserta)
	require.NoError(t, err)
	assert.Equal(t, "SUDAH_MASUK", today.Status)
	assert.False(t, today.CanMasuk)
	assert.False(t, today.CanKeluar)

	f.now = wib("17:00:00")
	today, err = f.uc.HariIni(f.peserta)
	require.NoError(t, err)
	assert.True(t, today.CanKeluar)

	res, err := f.uc.Keluar(f.peserta, kantorDisdik)
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", res.Presensi.JamKeluar)
	assert.Equal(t, "08:05:00", res.Presensi.JamMasuk)

	_, err = f.uc.Keluar(f.peserta, kantorDisdik)
	assert.ErrorIs(t, err, presensi.ErrSudahKeluar)

	today, err = f.uc.HariIni(f.peserta)
	require.NoError(t, err)
	assert.Equal(t, "SELESAI", today.Status)
	assert.Equal(t, "17:00:00", today.JamKeluar)
}

func TestPresensiStatusLokasi(t *testing.T) {
	f := newPresensiFixture(t)
	require.NoError(t, f.store.Lokasi().Create(&model.Lokasi{
		NamaLokasi: "Disdik", Latitude: -0.9471, Longitude: 100.4172, RadiusMeter: 100,
	}))
	f.now = wib("08:10:00")

	res, err := f.uc.Masuk(f.peserta, kantorDisdik)
	require.NoError(t, err)
	assert.Equal(t, presensi.LokasiValid, res.Presensi.StatusLokasiMasuk)
	require.NotNil(t, res.Presensi.LokasiID)

	// lokasi jauh tetap boleh keluar, hanya ditandai INVALID
	f.now = wib("16:10:00")
	res, err = f.uc.Keluar(f.peserta, Koordinat{Latitude: -6.2, Longitude: 106.8})
	require.NoError(t, err)
	assert.Equal(t, presensi.LokasiInvalid, res.Presensi.StatusLokasiKeluar)
	assert.Greater(t, res.Jarak, 100.0)
}

func TestPresensiOtorisasi(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("08:30:00")

	_, err := f.uc.Masuk(Actor{}, kantorDisdik)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.uc.Masuk(f.admin, kantorDisdik)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Rekap(f.peserta, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Masuk(f.peserta, Koordinat{Latitude: 91})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPresensiRekapAdmin(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("08:30:00")
	_, err := f.uc.Masuk(f.peserta, kantorDisdik)
	require.NoError(t, err)

	list, err := f.uc.Rekap(f.admin, "sari")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].UserRef)
	assert.Equal(t, "Sari", list[0].UserRef.Name)

	list, err = f.uc.Rekap(f.admin, "budi")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPresensiInsertDuplikatJadiConflict(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("08:30:00")
	// request kedua yang lolos cek status bersamaan akan kena unique index saat insert
	f.store.FailCreate = gorm.ErrDuplicatedKey

	_, err := f.uc.Masuk(f.peserta, kantorDisdik)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRepoPresensiDuplikatUserTanggal(t *testing.T) {
	store := repotest.NewStore()
	repo := store.Presensi()
	require.NoError(t, repo.Create(&model.Presensi{UserID: 7, Tanggal: "2026-10-15"}))

	err := repo.Create(&model.Presensi{UserID: 7, Tanggal: "2026-10-15"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, repo.Create(&model.Presensi{UserID: 7, Tanggal: "2026-10-16"}))
}

func TestPresensiInsertErrorDatabaseBukanConflict(t *testing.T) {
	f := newPresensiFixture(t)
	f.now = wib("08:30:00")
	dbDown := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	f.store.FailCreate = dbDown

	_, err := f.uc.Masuk(f.peserta, kantorDisdik)
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.False(t, IsStateError(err))
}
