package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileStore keeps one JSON file per figure under a directory. It is the
// default backend for CLI usage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Put writes the figure envelope, replacing any previous version.
func (s *FileStore) Put(ctx context.Context, fig Figure) error {
	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(fig.Name), data, 0644)
}

// Get reads the figure stored under name.
func (s *FileStore) Get(ctx context.Context, name string) (Figure, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return Figure{}, ErrNotFound
	}
	if err != nil {
		return Figure{}, err
	}

	var fig Figure
	if err := json.Unmarshal(data, &fig); err != nil {
		return Figure{}, err
	}
	return fig, nil
}

// List reads every stored figure, sorted by name.
func (s *FileStore) List(ctx context.Context) ([]Figure, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	figs := make([]Figure, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var fig Figure
		if err := json.Unmarshal(data, &fig); err != nil {
			// Foreign file in the store directory - skip it.
			continue
		}
		figs = append(figs, fig)
	}

	slices.SortFunc(figs, func(a, b Figure) int {
		return strings.Compare(a.Name, b.Name)
	})
	return figs, nil
}

// Delete removes the figure stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for the file backend.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, fileKey(name))
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
