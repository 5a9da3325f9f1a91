package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
)

// FileStore keeps snapshots as files under a checkpoints directory
type FileStore struct {
	dir string
}

var _ Store = &FileStore{}

func NewFileStore(saveDir string) (*FileStore, error) {
	dir := path.Join(saveDir, "checkpoints")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating checkpoint dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	// Keys contain colons, which are not filename friendly everywhere.
	return path.Join(f.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

func (f *FileStore) Save(_ context.Context, key string, data []byte) error {
	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	return data, nil
}

func (f *FileStore) Close() error {
	return nil
}
