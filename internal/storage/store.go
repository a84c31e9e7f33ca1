// Package storage persists uploaded documents on the local filesystem under
// a configured root, one directory per record type.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes and removes document files under a root directory.
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the configured root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the absolute path for a stored file.
func (s *Store) Path(dir, name string) string {
	return filepath.Join(s.root, dir, name)
}

// Save streams r into dir/name. The write goes to a temp file first and is
// renamed into place, so a crash mid-upload never leaves a partial document
// behind.
func (s *Store) Save(dir, name string, r io.Reader) error {
	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("storage: create %s: %w", target, err)
	}

	tmp := filepath.Join(target, "."+uuid.NewString()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: close %s: %w", name, err)
	}
	if err = os.Rename(tmp, filepath.Join(target, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: rename %s: %w", name, err)
	}
	return nil
}

// Exists reports whether dir/name is present on disk.
func (s *Store) Exists(dir, name string) bool {
	_, err := os.Stat(s.Path(dir, name))
	return err == nil
}

// Remove deletes dir/name. A file already gone is not an error; rows and
// files can legitimately drift when a disk is restored from backup.
func (s *Store) Remove(dir, name string) error {
	err := os.Remove(s.Path(dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", name, err)
	}
	return nil
}
