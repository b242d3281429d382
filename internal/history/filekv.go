package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV persists the key-value map as a single JSON file on disk. Each
// operation loads, mutates, and rewrites the file; writes go through a temp
// file and rename.
type FileKV struct {
	path string
}

// NewFileKV creates a file-backed store at the given path, creating parent
// directories as needed.
func NewFileKV(path string) (*FileKV, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileKV{path: path}, nil
}

func (f *FileKV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", f.path, err)
	}

	items := map[string]string{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", f.path, err)
	}
	return items, nil
}

// GetItem implements KV.
func (f *FileKV) GetItem(_ context.Context, key string) (string, bool, error) {
	items, err := f.load()
	if err != nil {
		return "", false, err
	}
	value, found := items[key]
	return value, found, nil
}

// SetItem implements KV.
func (f *FileKV) SetItem(_ context.Context, key, value string) error {
	items, err := f.load()
	if err != nil {
		return err
	}
	items[key] = value

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
