// Package config loads the plotspec configuration file.
//
// The configuration lives at ~/.config/plotspec/config.toml (or under
// $XDG_CONFIG_HOME when set) and controls the figure store backend, the
// serve address, and default figure dimensions. A missing file yields the
// defaults; a malformed file is an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/plotspec/plotspec/pkg/errors"
)

// appName is the directory name used under the XDG config root.
const appName = "plotspec"

// Store backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the root configuration document.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Serve  ServeConfig  `toml:"serve"`
	Figure FigureConfig `toml:"figure"`
}

// StoreConfig selects and parameterizes the figure store backend.
type StoreConfig struct {
	Backend string      `toml:"backend"` // file, memory, redis, or mongo
	Dir     string      `toml:"dir"`     // file backend directory; defaults to XDG data dir
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig parameterizes the redis store backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig parameterizes the mongo store backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeConfig parameterizes the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// FigureConfig holds default figure dimensions applied by the CLI when a
// figure's layout sets none.
type FigureConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "plotspec",
				Collection: "figures",
			},
		},
		Serve:  ServeConfig{Addr: ":8093"},
		Figure: FigureConfig{Width: 800, Height: 600},
	}
}

// Path returns the config file path using the XDG standard
// (~/.config/plotspec/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, applying defaults for anything the
// file does not set. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfig, err, "failed to parse %s", path)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Store.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo:
		return nil
	default:
		return errors.New(errors.ErrCodeConfig, "unknown store backend: %q", cfg.Store.Backend)
	}
}
