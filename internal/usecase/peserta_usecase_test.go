package usecase

import (
	"errors"
	"sync"
	"testing"

	"magang-backend/internal/model"
	"magang-backend/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeaktifan(t *testing.T) {
	assert.Equal(t, 0, Keaktifan(0, 0))
	assert.Equal(t, 50, Keaktifan(90, 0))
	assert.Equal(t, 50, Keaktifan(0, 10))
	assert.Equal(t, 100, Keaktifan(90, 10))
	assert.Equal(t, 100, Keaktifan(200, 30))
	// (45/90 + 3/10) / 2 = 0.4
	assert.Equal(t, 40, Keaktifan(45, 3))
}

func TestPesertaStats(t *testing.T) {
	store := repotest.NewStore()
	sari := store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	budi := store.AddUser("Budi", "budi@example.com", model.RolePeserta)
	admin := store.AddUser("Admin", "admin@example.com", model.RoleAdmin)

	for _, tgl := range []string{"2026-10-13", "2026-10-14", "2026-10-15"} {
		require.NoError(t, store.Presensi().Create(&model.Presensi{UserID: sari.ID, Tanggal: tgl, JamMasuk: "08:00:00"}))
	}
	require.NoError(t, store.Presensi().Create(&model.Presensi{UserID: budi.ID, Tanggal: "2026-10-15", JamMasuk: "08:10:00"}))
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Laporan().Create(&model.Laporan{UserID: budi.ID, Judul: "x"}))
	}

	uc := NewPesertaUsecase(store.Users(), store.Presensi(), store.Laporan())
	actor := Actor{ID: admin.ID, Role: model.RoleAdmin}

	list, err := uc.Stats(actor, "", "name", "asc")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Budi", list[0].Name)
	assert.Equal(t, int64(1), list[0].Hadir)
	assert.Equal(t, int64(4), list[0].Tugas)

	list, err = uc.Stats(actor, "", "hadir", "desc")
	require.NoError(t, err)
	assert.Equal(t, "Sari", list[0].Name)
	assert.Equal(t, int64(3), list[0].Hadir)

	list, err = uc.Stats(actor, "", "tugas", "desc")
	require.NoError(t, err)
	assert.Equal(t, "Budi", list[0].Name)

	list, err = uc.Stats(actor, "sari", "", "")
	require.NoError(t, err)
	require.Len(t, list, 1)

	refs, err := uc.List(actor, "")
	require.NoError(t, err)
	assert.Len(t, refs, 2)

	_, err = uc.Stats(Actor{ID: sari.ID, Role: model.RolePeserta}, "", "", "")
	assert.ErrorIs(t, err, ErrForbidden)
}

type fakeNotifier struct {
	mu   sync.Mutex
	to   []string
	fail error
}

func (n *fakeNotifier) FeedbackBaru(to, nama, isi string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.to = append(n.to, to)
	return n.fail
}

func TestFeedbackKirimDanBaca(t *testing.T) {
	store := repotest.NewStore()
	sari := store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	admin := store.AddUser("Admin", "admin@example.com", model.RoleAdmin)
	n := &fakeNotifier{}

	uc := NewFeedbackUsecase(store.Feedback(), store.Users(), n).Sync()
	adminActor := Actor{ID: admin.ID, Role: model.RoleAdmin}
	sariActor := Actor{ID: sari.ID, Role: model.RolePeserta}

	fb, err := uc.Kirim(adminActor, sari.ID, "  Laporan sudah rapi  ")
	require.NoError(t, err)
	assert.Equal(t, "Laporan sudah rapi", fb.Feedback)
	assert.Equal(t, admin.ID, fb.AdminID)
	assert.Equal(t, []string{"sari@example.com"}, n.to)

	list, err := uc.Milik(sariActor)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = uc.Kirim(adminActor, sari.ID, " ")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = uc.Kirim(adminActor, admin.ID, "x")
	assert.ErrorAs(t, err, &verr)

	_, err = uc.Kirim(adminActor, 999, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.Kirim(sariActor, sari.ID, "x")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFeedbackTetapTersimpanSaatEmailGagal(t *testing.T) {
	store := repotest.NewStore()
	sari := store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	admin := store.AddUser("Admin", "admin@example.com", model.RoleAdmin)

	uc := NewFeedbackUsecase(store.Feedback(), store.Users(), &fakeNotifier{fail: errors.New("smtp down")}).Sync()
	_, err := uc.Kirim(Actor{ID: admin.ID, Role: model.RoleAdmin}, sari.ID, "Semangat")
	require.NoError(t, err)

	list, err := uc.Milik(Actor{ID: sari.ID, Role: model.RolePeserta})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdminDashboardDanLokasi(t *testing.T) {
	store := repotest.NewStore()
	store.AddUser("Sari", "sari@example.com", model.RolePeserta)
	admin := store.AddUser("Admin", "admin@example.com", model.RoleAdmin)
	actor := Actor{ID: admin.ID, Role: model.RoleAdmin}

	uc := NewAdminUsecase(store.Dashboard(), store.Lokasi())
	stats, err := uc.Dashboard(actor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalPeserta)

	l, err := uc.TambahLokasi(actor, LokasiInput{NamaLokasi: "Disdik", Latitude: -0.94, Longitude: 100.41, RadiusMeter: 150})
	require.NoError(t, err)

	_, err = uc.TambahLokasi(actor, LokasiInput{NamaLokasi: "Salah", Latitude: 120})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	list, err := uc.Lokasi(actor)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.HapusLokasi(actor, l.ID))
	assert.ErrorIs(t, uc.HapusLokasi(actor, l.ID), ErrNotFound)

	_, err = uc.Dashboard(Actor{ID: 1, Role: model.RolePeserta})
	assert.ErrorIs(t, err, ErrForbidden)
}
