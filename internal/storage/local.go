package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"magang-backend/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file tidak ditemukan")

// FileStore menyimpan file laporan. FileID yang dikembalikan dipakai sebagai kunci download.
type FileStore interface {
	Save(originalName string, r io.Reader) (model.StoredFile, error)
	Open(fileID string) (io.ReadCloser, error)
	Remove(fileID string) error
}

type LocalStore struct {
	dir string
}

// NewLocalStore menyimpan file di <uploadDir>/laporan. Folder dibuat jika belum ada.
func NewLocalStore(uploadDir string) (*LocalStore, error) {
	dir := filepath.Join(uploadDir, "laporan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("buat folder upload: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(originalName string, r io.Reader) (model.StoredFile, error) {
	// Baca 512 byte pertama untuk deteksi MIME, lalu sambung lagi dengan sisa stream.
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return model.StoredFile{}, err
	}
	head = head[:n]
	mt := mimetype.Detect(head)

	name := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = mt.Extension()
	}
	fileID := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, fileID))
	if err != nil {
		return model.StoredFile{}, err
	}
	defer f.Close()

	size, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		os.Remove(f.Name())
		return model.StoredFile{}, err
	}

	return model.StoredFile{
		FileID:       fileID,
		OriginalName: name,
		MimeType:     mt.String(),
		Size:         size,
	}, nil
}

func (s *LocalStore) Open(fileID string) (io.ReadCloser, error) {
	path, err := s.path(fileID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return f, err
}

func (s *LocalStore) Remove(fileID string) error {
	path, err := s.path(fileID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// path menolak fileID yang mencoba keluar dari folder upload.
func (s *LocalStore) path(fileID string) (string, error) {
	if fileID == "" || fileID != filepath.Base(fileID) || strings.HasPrefix(fileID, ".") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, fileID), nil
}
