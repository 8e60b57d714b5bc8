package app

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"
	"github.com/jmoiron/mccmd/internal/app/mcformat"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/preset"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App serves the command builder API and preview page.
type App struct {
	MCVersion string
	Verbose   int
	Presets   *preset.File
	tpl       *template.Template
}

//go:embed templates/*.gohtml static/*
var templatesFS embed.FS

// sampleVersions are offered by the preview page, one per format group.
var sampleVersions = []string{"1.12.2", "1.13.2", "1.16.5", "1.20.6", "1.21.5"}

// New returns an app targeting mc by default. If presetPath is set, the
// preset file is loaded and listed on the preview page.
func New(presetPath, mc string, verbose int) (*App, error) {
	a := &App{MCVersion: mc, Verbose: verbose}
	if presetPath != "" {
		f, err := preset.Load(presetPath)
		if err != nil {
			return nil, err
		}
		a.Presets = f
	}

	// Load templates from embedded FS
	sub, _ := fs.Sub(templatesFS, "templates")
	sh := sprout.New()
	if err := sh.AddRegistry(sproutstrings.NewRegistry()); err != nil {
		return nil, err
	}
	funcs := sh.Build()
	funcs["mc"] = func(s string) template.HTML { return mcformat.Format(s) }
	funcs["group"] = func(v string) string { return mcver.Resolve(v).String() }
	funcs["eq"] = func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) }
	tpl, err := template.New("base").Funcs(funcs).ParseFS(sub, "*.gohtml")
	if err != nil {
		return nil, err
	}
	a.tpl = tpl
	return a, nil
}

// Router returns the app's handler.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if a.Verbose > 0 {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(countRequests)

	// Static assets
	mime.AddExtensionType(".css", "text/css")
	staticFS, _ := fs.Sub(templatesFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", a.index)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/version/{version}", a.versionInfo)
		r.Get("/presets", a.presetList)
		r.Post("/text", a.text)
		r.Post("/render", a.renderPresets)
		r.Post("/{kind}", a.command)
	})

	return r
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// version returns the requested version, or the app default.
func (a *App) version(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return a.MCVersion
}

// filteredPresets renders the loaded presets matching q for version.
func (a *App) filteredPresets(ctx context.Context, q, version string) ([]preset.Result, error) {
	if a.Presets == nil {
		return nil, nil
	}
	terms := splitTerms(q, false)
	var ps []preset.Preset
	for _, p := range a.Presets.Presets {
		if matchPreset(p, terms, false) {
			ps = append(ps, p)
		}
	}
	results, err := preset.RenderAll(ctx, ps, version)
	if err != nil {
		return nil, err
	}
	g := mcver.Resolve(version).String()
	for _, res := range results {
		commandsRendered.WithLabelValues(res.Kind, g).Inc()
	}
	return results, nil
}

// index handles GET "/".
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	v := a.version(r.URL.Query().Get("v"))
	q := r.URL.Query().Get("q")
	results, err := a.filteredPresets(r.Context(), q, v)
	if err != nil {
		slog.Error("rendering presets", "error", err)
	}
	g := mcver.Resolve(v)
	features := make([]string, 0, len(g.Features()))
	for _, f := range g.Features() {
		features = append(features, string(f))
	}
	a.render(w, "index.gohtml", map[string]any{
		"Title":     "mccmd",
		"MCVersion": v,
		"Group":     g.String(),
		"Features":  features,
		"Versions":  sampleVersions,
		"Query":     q,
		"Presets":   results,
		"Error":     err,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]any{"ok": false, "error": msg})
}

// maxBody bounds request bodies.
const maxBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
