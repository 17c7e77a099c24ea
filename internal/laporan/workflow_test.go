package laporan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSize(t *testing.T) {
	max := MaxBytes(4)

	assert.NoError(t, CheckSize(0, 4))
	assert.NoError(t, CheckSize(max, 4))

	err := CheckSize(max+1, 4)
	require.Error(t, err)
	var se *SizeError
	assert.True(t, errors.As(err, &se))

	err = CheckSize(5*1024*1024, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4MB")
	assert.Contains(t, err.Error(), "5.00MB")
}

func TestCheckSizeDefaultsWhenLimitMissing(t *testing.T) {
	assert.NoError(t, CheckSize(MaxBytes(DefaultMaxMB), 0))
	assert.Error(t, CheckSize(MaxBytes(DefaultMaxMB)+1, 0))
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "SESUAI", " revisi "} {
		_, err := ParseStatus(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseStatus("ditolak")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanResubmit(t *testing.T) {
	assert.NoError(t, CanResubmit(Revisi))
	assert.ErrorIs(t, CanResubmit(Pending), ErrResubmit)
	assert.ErrorIs(t, CanResubmit(Sesuai), ErrResubmit)
}

func TestFitsBase64(t *testing.T) {
	assert.True(t, FitsBase64(2*1024*1024))
	assert.True(t, FitsBase64(SafeBase64Bytes))
	assert.False(t, FitsBase64(SafeBase64Bytes+1))
}
