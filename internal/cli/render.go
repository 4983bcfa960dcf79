package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/errors"
	"github.com/plotspec/plotspec/pkg/examples"
	"github.com/plotspec/plotspec/pkg/plotly"
	"github.com/plotspec/plotspec/pkg/render"
	"github.com/plotspec/plotspec/pkg/store"
)

const (
	formatJSON = "json"
	formatHTML = "html"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "json", "html"
	title   string   // HTML page title; defaults to the example description
	cdn     string   // plotly.js script URL override
}

// renderCommand creates the render command for writing figure documents.
// The argument names either a bundled example or a saved figure; examples
// win when both exist.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:               "render [example|figure]",
		Short:             "Render a figure to a JSON document and/or an HTML page",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: exampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); default stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), html (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title")
	cmd.Flags().StringVar(&opts.cdn, "cdn", "", "plotly.js script URL (default: official CDN)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["json"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatJSON}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatJSON: true, formatHTML: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'json' or 'html')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output flag and the figure
// name. A known format extension on the output flag is stripped so multiple
// formats land next to each other.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender resolves the figure behind name and writes the requested formats.
func (c *CLI) runRender(ctx context.Context, name string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, title, err := c.resolveFigure(ctx, name)
	if err != nil {
		return err
	}
	if opts.title != "" {
		title = opts.title
	}
	logger.Debugf("Resolved figure %q: %d bytes", name, len(doc))

	var htmlOpts []render.HTMLOption
	if opts.cdn != "" {
		htmlOpts = append(htmlOpts, render.WithCDN(opts.cdn))
	}
	if title != "" {
		htmlOpts = append(htmlOpts, render.WithPageTitle(title))
	}

	if len(opts.formats) == 1 {
		path := opts.output
		if path == "" && opts.formats[0] != formatJSON {
			path = name + "." + opts.formats[0]
		}
		if err := writeFigure(doc, opts.formats[0], path, htmlOpts); err != nil {
			return err
		}
		if path != "" {
			printFile(path)
		}
	} else {
		base := basePath(opts.output, name)
		for _, format := range opts.formats {
			path := base + "." + format
			if err := writeFigure(doc, format, path, htmlOpts); err != nil {
				return err
			}
			printFile(path)
		}
	}

	prog.done(fmt.Sprintf("Rendered %s", name))
	return nil
}

// resolveFigure builds the named bundled example, or falls back to the
// figure store when no example matches. It returns the encoded document and
// a human title for HTML output.
func (c *CLI) resolveFigure(ctx context.Context, name string) ([]byte, string, error) {
	ex, err := examples.Find(name)
	if err == nil {
		cfg, err := c.loadConfig()
		if err != nil {
			return nil, "", err
		}
		p := render.EnsureID(applyFigureDefaults(ex.Build(), cfg.Figure))
		doc, err := p.JSON()
		if err != nil {
			return nil, "", err
		}
		return doc, ex.Description, nil
	}
	if !errors.Is(err, errors.ErrCodeExampleNotFound) {
		return nil, "", err
	}

	s, _, err := c.openStore(ctx)
	if err != nil {
		return nil, "", err
	}
	defer s.Close()

	fig, err := s.Get(ctx, name)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, "", errors.New(errors.ErrCodeFigureNotFound, "no example or saved figure named %q", name)
	}
	if err != nil {
		return nil, "", err
	}
	return fig.Doc, fig.Name, nil
}

// applyFigureDefaults fills in the configured default dimensions when the
// figure's layout sets none.
func applyFigureDefaults(p plotly.Plot, fig config.FigureConfig) plotly.Plot {
	l := p.Layout
	if l.Width == nil && fig.Width > 0 {
		l = l.WithWidth(fig.Width)
	}
	if l.Height == nil && fig.Height > 0 {
		l = l.WithHeight(fig.Height)
	}
	return p.WithLayout(l)
}

// writeFigure writes the encoded figure document in the given format to
// path, or to stdout when path is empty.
func writeFigure(doc []byte, format, path string, htmlOpts []render.HTMLOption) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case formatJSON:
		return render.WriteJSONDoc(doc, out)
	case formatHTML:
		return render.WriteHTMLDoc(doc, out, htmlOpts...)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
