// Package storage defines the file store used for uploaded product
// images and a local-disk implementation of it.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage is implemented by anything that can durably persist and
// retrieve named files.
type Storage interface {
	Save(name string, contents io.Reader) error
	Get(name string) (*os.File, error)
}

// Local persists files in a flat directory on the local filesystem.
type Local struct {
	basePath string
}

// NewLocal creates a Local store rooted at basePath, creating the
// directory if it does not exist yet.
func NewLocal(basePath string) (*Local, error) {
	p, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create upload directory: %w", err)
	}

	return &Local{basePath: p}, nil
}

// Save writes contents to a temporary file in the target directory and
// renames it into place, so a partial write never becomes visible and
// the file handle is closed on every path.
func (l *Local) Save(name string, contents io.Reader) error {
	fp := l.fullPath(name)
	dir := filepath.Dir(fp)

	tempFile, err := os.CreateTemp(dir, "upload-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()
	// Ensure the temporary file is deleted if the function returns early
	defer os.Remove(tempPath)

	if _, err := io.Copy(tempFile, contents); err != nil {
		tempFile.Close()
		return fmt.Errorf("unable to write to file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if err := os.Rename(tempPath, fp); err != nil {
		return fmt.Errorf("unable to move temporary file to final location: %w", err)
	}

	return nil
}

// Get opens the named file for reading. The caller owns the handle.
func (l *Local) Get(name string) (*os.File, error) {
	f, err := os.Open(l.fullPath(name))
	if err != nil {
		return nil, fmt.Errorf("unable to open the file: %w", err)
	}

	return f, nil
}

// returns the absolute full path, confined to the base directory
func (l *Local) fullPath(name string) string {
	return filepath.Join(l.basePath, filepath.Base(name))
}
