// Package cli implements the plotspec command-line interface.
//
// This package provides commands for rendering the bundled example figures
// to JSON or HTML, saving figures into the configured store, managing the
// store, and serving figures over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - examples: List the bundled example figures
//   - render: Write a figure as a JSON document and/or an HTML page
//   - save: Persist a figure in the configured store
//   - store: Inspect and manage stored figures
//   - serve: Serve example and stored figures over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/buildinfo"
	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "plotspec"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config flag; empty means the XDG default
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Plotspec builds and ships plotly figure specifications",
		Long:         `Plotspec is a CLI tool for building declarative plotly figure specifications, exporting them as JSON documents or embeddable HTML pages, and serving saved figures over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: XDG config path)")

	// Register all subcommands
	root.AddCommand(c.examplesCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file selected by --config, falling back to the
// XDG default path.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// openStore builds the figure store selected by the configuration.
func (c *CLI) openStore(ctx context.Context) (store.Store, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, config.Config{}, err
	}
	return s, cfg, nil
}
