package database

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"storefront/codec"
)

// FileResource keeps one collection in one JSON file under the data
// directory. Flush writes a temp file and renames it over the old one, so a
// crash mid-write never leaves a torn file behind.
type FileResource struct {
	mu   sync.Mutex
	name string
	path string
}

func NewFileResource(dir, name string) *FileResource {
	return &FileResource{name: name, path: filepath.Join(dir, name)}
}

// OpenFiles returns file-backed resources rooted at dir.
func OpenFiles(dir string) *Resources {
	return &Resources{
		Products: NewFileResource(dir, productsFile),
		Users:    NewFileResource(dir, usersFile),
		Carts:    NewFileResource(dir, cartsFile),
		Orders:   NewFileResource(dir, ordersFile),
	}
}

func (r *FileResource) Name() string { return r.name }

func (r *FileResource) Load() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(r.path, codec.EmptyCollection, 0o644); err != nil {
			return nil, err
		}
		return codec.EmptyCollection, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return codec.EmptyCollection, nil
	}
	return data, nil
}

func (r *FileResource) Flush(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
