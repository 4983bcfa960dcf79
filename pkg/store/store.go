// Package store persists named figure documents.
//
// A Store holds serialized figure specifications (the JSON produced by
// pkg/plotly) keyed by a user-chosen name, so the CLI can save a figure once
// and re-render or serve it later. Four backends exist:
//   - file: one JSON file per figure under a directory (the CLI default)
//   - memory: in-process map, for tests and throwaway use
//   - redis: shared store for multi-instance serving
//   - mongo: document store for larger collections
//
// All backends implement the same interface and the same not-found
// semantics: Get and Delete return ErrNotFound for unknown names.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/plotspec/plotspec/pkg/config"
)

// ErrNotFound is returned when a requested figure does not exist.
var ErrNotFound = errors.New("figure not found")

// Figure is a stored figure document: the plot JSON plus bookkeeping.
type Figure struct {
	Name    string          `json:"name" bson:"_id"`
	SavedAt time.Time       `json:"saved_at" bson:"saved_at"`
	Doc     json.RawMessage `json:"doc" bson:"doc"`
}

// Store persists figures by name.
type Store interface {
	// Put stores fig, replacing any existing figure with the same name.
	Put(ctx context.Context, fig Figure) error

	// Get retrieves the figure stored under name.
	Get(ctx context.Context, name string) (Figure, error)

	// List returns all stored figures sorted by name.
	List(ctx context.Context) ([]Figure, error)

	// Delete removes the figure stored under name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// Open builds the store selected by cfg.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg.Redis)
	case config.BackendMongo:
		return NewMongoStore(ctx, cfg.Mongo)
	default:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = DefaultDir(); err != nil {
				return nil, err
			}
		}
		return NewFileStore(dir)
	}
}

// DefaultDir returns the file backend's default directory using the XDG
// standard (~/.local/share/plotspec/figures).
func DefaultDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "plotspec", "figures"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "plotspec", "figures"), nil
}
