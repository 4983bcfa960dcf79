package cli

import (
	"context"
	stderrors "errors"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/examples"
	"github.com/plotspec/plotspec/pkg/render"
	"github.com/plotspec/plotspec/pkg/store"
)

// serveCommand creates the serve command for exposing figures over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve example and saved figures over HTTP",
		Long: `Serve starts an HTTP server exposing the bundled examples and every saved
figure as browsable HTML pages and raw JSON documents.

Routes:
  GET /                     index of examples and saved figures
  GET /example/{name}       example rendered as an HTML page
  GET /example/{name}.json  example as a JSON document
  GET /figure/{name}        saved figure rendered as an HTML page
  GET /figure/{name}.json   saved figure as a JSON document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, :8093)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	s, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if addr == "" {
		addr = cfg.Serve.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(s, cfg.Figure, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving figures on http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// figureServer handles the HTTP routes over the example set and the store.
type figureServer struct {
	store  store.Store
	figCfg config.FigureConfig
	logger *log.Logger
}

// newRouter builds the chi router for the serve command.
func newRouter(s store.Store, figCfg config.FigureConfig, logger *log.Logger) http.Handler {
	fs := &figureServer{store: s, logger: logger, figCfg: figCfg}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", fs.handleIndex)
	r.Get("/example/{name}", fs.handleExampleHTML)
	r.Get("/example/{name}.json", fs.handleExampleJSON)
	r.Get("/figure/{name}", fs.handleFigureHTML)
	r.Get("/figure/{name}.json", fs.handleFigureJSON)

	return r
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
		})
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>plotspec</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
li { margin: 0.25rem 0; }
small { color: #777; }
</style>
</head>
<body>
<h1>plotspec</h1>
<h2>Examples</h2>
<ul>
{{range .Examples}}<li><a href="/example/{{.Name}}">{{.Name}}</a> <small>{{.Description}}</small> <a href="/example/{{.Name}}.json"><small>json</small></a></li>
{{end}}</ul>
<h2>Saved figures</h2>
{{if .Figures}}<ul>
{{range .Figures}}<li><a href="/figure/{{.Name}}">{{.Name}}</a> <small>saved {{.SavedAt.Format "2006-01-02 15:04"}}</small> <a href="/figure/{{.Name}}.json"><small>json</small></a></li>
{{end}}</ul>{{else}}<p><small>none yet; save one with: plotspec save &lt;example&gt;</small></p>{{end}}
</body>
</html>
`))

func (fs *figureServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	figs, err := fs.store.List(r.Context())
	if err != nil {
		fs.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = indexTemplate.Execute(w, struct {
		Examples []examples.Example
		Figures  []store.Figure
	}{examples.All(), figs})
	if err != nil {
		fs.logger.Errorf("index: %v", err)
	}
}

func (fs *figureServer) handleExampleHTML(w http.ResponseWriter, r *http.Request) {
	ex, err := examples.Find(chi.URLParam(r, "name"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	p := render.EnsureID(applyFigureDefaults(ex.Build(), fs.figCfg))
	if err := render.WriteHTML(p, w, render.WithPageTitle(ex.Description)); err != nil {
		fs.logger.Errorf("example %s: %v", ex.Name, err)
	}
}

func (fs *figureServer) handleExampleJSON(w http.ResponseWriter, r *http.Request) {
	ex, err := examples.Find(chi.URLParam(r, "name"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	p := render.EnsureID(applyFigureDefaults(ex.Build(), fs.figCfg))
	if err := render.WriteJSON(p, w); err != nil {
		fs.logger.Errorf("example %s: %v", ex.Name, err)
	}
}

func (fs *figureServer) handleFigureHTML(w http.ResponseWriter, r *http.Request) {
	fig, err := fs.store.Get(r.Context(), chi.URLParam(r, "name"))
	if stderrors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		fs.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTMLDoc(fig.Doc, w, render.WithPageTitle(fig.Name)); err != nil {
		fs.logger.Errorf("figure %s: %v", fig.Name, err)
	}
}

func (fs *figureServer) handleFigureJSON(w http.ResponseWriter, r *http.Request) {
	fig, err := fs.store.Get(r.Context(), chi.URLParam(r, "name"))
	if stderrors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		fs.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := render.WriteJSONDoc(fig.Doc, w); err != nil {
		fs.logger.Errorf("figure %s: %v", fig.Name, err)
	}
}

func (fs *figureServer) serverError(w http.ResponseWriter, err error) {
	fs.logger.Errorf("store: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
