package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magang-backend/internal/laporan"
)

func TestLaporanReviewThenResubmit(t *testing.T) {
	l := Laporan{ID: 1, UserID: 7, Judul: "Minggu 1", Status: laporan.Pending, FileID: "old.pdf"}

	before := time.Now()
	l.ApplyReview(laporan.Revisi, "Perbaiki cover", 99, time.Now())

	assert.Equal(t, laporan.Revisi, l.Status)
	assert.Equal(t, "Perbaiki cover", l.AdminCatatan)
	require.NotNil(t, l.ReviewedAt)
	assert.False(t, l.ReviewedAt.Before(before))
	require.NotNil(t, l.ReviewedByID)
	assert.Equal(t, uint(99), *l.ReviewedByID)

	err := l.ApplyResubmit(StoredFile{FileID: "new.pdf", OriginalName: "laporan-v2.pdf", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, laporan.Pending, l.Status)
	assert.Equal(t, "new.pdf", l.FileID)
	assert.Equal(t, "laporan-v2.pdf", l.OriginalName)
	assert.Equal(t, "Perbaiki cover", l.AdminCatatan)
}

func TestLaporanResubmitRejectedUnlessRevisi(t *testing.T) {
	for _, st := range []laporan.Status{laporan.Pending, laporan.Sesuai} {
		l := Laporan{Status: st, FileID: "keep.pdf"}
		err := l.ApplyResubmit(StoredFile{FileID: "new.pdf"})
		assert.ErrorIs(t, err, laporan.ErrResubmit)
		assert.Equal(t, "keep.pdf", l.FileID)
		assert.Equal(t, st, l.Status)
	}
}

func TestLaporanReviewFromAnyState(t *testing.T) {
	l := Laporan{Status: laporan.Sesuai, AdminCatatan: "ok"}
	l.ApplyReview(laporan.Pending, "", 1, time.Now())
	assert.Equal(t, laporan.Pending, l.Status)
	assert.Empty(t, l.AdminCatatan)
}

func TestLaporanView(t *testing.T) {
	l := Laporan{
		ID:     3,
		Status: laporan.Sesuai,
		User:   User{ID: 7, Name: "Sari", Email: "sari@example.com"},
	}
	v := l.View()
	assert.True(t, v.Reviewed)
	require.NotNil(t, v.UserRef)
	assert.Equal(t, "Sari", v.UserRef.Name)
	assert.Nil(t, v.ReviewerBy)
}
