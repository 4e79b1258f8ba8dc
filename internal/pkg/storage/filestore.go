package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oguzdem/gradekeeper/internal/pkg/logger"
)

// FileStore persists each collection as a pretty-printed JSON file named
// <key>.json under a base directory. Writes go through a temp file and
// rename so a crashed write never leaves a truncated collection behind.
type FileStore struct {
	basePath string
}

// NewFileStore creates a FileStore rooted at basePath, creating the
// directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create data directory")
		return nil, fmt.Errorf("failed to create data directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Data directory ensured")

	return &FileStore{basePath: basePath}, nil
}

// Load reads the JSON file stored under key into v. A missing file yields
// ErrKeyNotFound; an unreadable or unparsable file yields the underlying
// error. The caller decides whether either case is fatal (it is not, for
// collection loads).
func (fs *FileStore) Load(key string, v any) error {
	path := fs.pathFor(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Save serializes v and writes the whole value under key. The write is
// atomic at the file level: serialize, write to a temp file, rename.
func (fs *FileStore) Save(key string, v any) error {
	path := fs.pathFor(key)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		// Best effort cleanup of the orphaned temp file
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// pathFor maps a collection key to its backing file.
func (fs *FileStore) pathFor(key string) string {
	return filepath.Join(fs.basePath, key+".json")
}
