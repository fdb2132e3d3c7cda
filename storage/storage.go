// Package storage holds the filesystem-facing collaborators: a file store
// for uploaded media and the thumbnail codec.
package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type FileStorage interface {
	Save(name string, r io.Reader) error
	Delete(name string) error
	Path(name string) string
}

type diskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskStorage{dir: dir}, nil
}

func (s *diskStorage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *diskStorage) Save(name string, r io.Reader) error {
	f, err := os.Create(s.Path(name))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

// Delete removes a file; a file that is already gone is not an error so that
// media deletion can proceed past missing thumbnails.
func (s *diskStorage) Delete(name string) error {
	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
