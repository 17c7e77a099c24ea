package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveOpenRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	content := "%PDF-1.4\nisi laporan minggu pertama"
	f, err := store.Save("../../laporan minggu 1.pdf", strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "laporan minggu 1.pdf", f.OriginalName)
	assert.Equal(t, int64(len(content)), f.Size)
	assert.True(t, strings.HasSuffix(f.FileID, ".pdf"))
	assert.Equal(t, "application/pdf", f.MimeType)

	rc, err := store.Open(f.FileID)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, content, string(b))

	require.NoError(t, store.Remove(f.FileID))
	_, err = store.Open(f.FileID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, id := range []string{"", "../secret", "a/b.pdf", ".env"} {
		_, err := store.Open(id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestLocalStoreSmallFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	f, err := store.Save("catatan.txt", strings.NewReader("ok"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.Size)
	assert.True(t, strings.HasPrefix(f.MimeType, "text/plain"))
}
