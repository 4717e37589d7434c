package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob хранит каждую коллекцию в отдельном json-файле каталога dir.
// Бэкенд по умолчанию: локальный и долговременный, в пределах одного
// развертывания.
type FileBlob struct {
	dir string
}

func NewFileBlob(dir string) *FileBlob {
	return &FileBlob{dir: dir}
}

func (f *FileBlob) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBlob) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

func (f *FileBlob) Save(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", f.dir, err)
	}
	if err := os.WriteFile(f.path(key), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
