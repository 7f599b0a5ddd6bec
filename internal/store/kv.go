// Package store persists the resume collection and active-resume
// pointer over a small key-value abstraction with file and PostgreSQL
// backends.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// KV is the durable key-value contract the store runs on. Get returns
// (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FileKV stores each key as one JSON file under a data directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a
// file-backed KV.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Message: "failed to create data directory", Cause: err}
	}
	return &FileKV{dir: dir}, nil
}

// path maps a key to its file. Keys are fixed internal names, but
// separators are rejected to keep everything inside the data dir.
func (f *FileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Message: "failed to read " + key, Cause: err}
	}
	return data, nil
}

func (f *FileKV) Set(_ context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return &StorageError{Message: "failed to write " + key, Cause: err}
	}
	if err := os.Rename(tmp, p); err != nil {
		return &StorageError{Message: "failed to commit " + key, Cause: err}
	}
	return nil
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StorageError{Message: "failed to delete " + key, Cause: err}
	}
	return nil
}
