package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/mccmd/internal/app/mcformat"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/preset"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/jmoiron/mccmd/internal/textcomp"
)

type textRequest struct {
	Version    string          `json:"version"`
	Text       string          `json:"text"`   // §/& coded
	Markup     string          `json:"markup"` // editor HTML, wins over text
	Events     textcomp.Events `json:"events"`
	CustomName bool            `json:"customName"`
}

type textResponse struct {
	OK        bool   `json:"ok"`
	Version   string `json:"version"`
	Group     string `json:"group"`
	Component string `json:"component"`
	Embedded  string `json:"embedded"`
	Legacy    string `json:"legacy"`
	Plain     string `json:"plain"`
	HTML      string `json:"html"`
}

func (req textRequest) runs() ([]richtext.Run, error) {
	if req.Markup == "" {
		return mcformat.ParseRuns(req.Text), nil
	}
	root, err := richtext.ParseHTML(strings.NewReader(req.Markup))
	if err != nil {
		return nil, err
	}
	return richtext.Compress(richtext.FromTree(root, richtext.Format{})), nil
}

// text handles POST /api/text, serializing one piece of styled text in every
// form the target version can use.
func (a *App) text(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	runs, err := req.runs()
	if err != nil {
		writeError(w, "markup: "+err.Error(), http.StatusBadRequest)
		return
	}
	v := a.version(req.Version)
	g := mcver.Resolve(v)
	opts := textcomp.Options{CustomName: req.CustomName}
	slog.Debug("serializing text", "version", v, "group", g, "runs", len(runs))
	commandsRendered.WithLabelValues("text", g.String()).Inc()
	writeJSON(w, http.StatusOK, textResponse{
		OK:        true,
		Version:   v,
		Group:     g.String(),
		Component: textcomp.Serialize(runs, req.Events, g, opts),
		Embedded:  string(textcomp.Embed(runs, req.Events, g, opts)),
		Legacy:    textcomp.Legacy(runs),
		Plain:     textcomp.Plain(runs),
		HTML:      string(mcformat.HTML(runs)),
	})
}

type commandRequest struct {
	preset.Preset
	Version string `json:"version"`
}

// command handles POST /api/{kind} for give, summon, effect, enchant and
// tellraw.
func (a *App) command(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Kind = chi.URLParam(r, "kind")
	v := a.version(req.Version)
	cmd, err := req.Preset.Render(v)
	if errors.Is(err, preset.ErrUnknownKind) {
		writeError(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	g := mcver.Resolve(v)
	commandsRendered.WithLabelValues(req.Kind, g.String()).Inc()
	slog.Debug("rendered command", "kind", req.Kind, "version", v, "len", len(cmd))
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"version": v,
		"group":   g.String(),
		"command": cmd,
	})
}

// renderPresets handles POST /api/render. The body is a YAML preset file;
// ?v= overrides the file's version.
func (a *App) renderPresets(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, "read: "+err.Error(), http.StatusBadRequest)
		return
	}
	f, err := preset.Parse(data)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	v := r.URL.Query().Get("v")
	if v == "" {
		v = a.version(f.Version)
	}
	results, err := preset.RenderAll(r.Context(), f.Presets, v)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, preset.ErrUnknownKind) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, err.Error(), status)
		return
	}
	g := mcver.Resolve(v).String()
	for _, res := range results {
		commandsRendered.WithLabelValues(res.Kind, g).Inc()
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "version": v, "group": g, "results": results})
}

// presetList handles GET /api/presets, rendering the loaded presets that
// match ?q= for ?v=.
func (a *App) presetList(w http.ResponseWriter, r *http.Request) {
	v := a.version(r.URL.Query().Get("v"))
	results, err := a.filteredPresets(r.Context(), r.URL.Query().Get("q"), v)
	if err != nil {
		slog.Error("rendering presets", "error", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []preset.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "version": v, "results": results})
}

// versionInfo handles GET /api/version/{version}.
func (a *App) versionInfo(w http.ResponseWriter, r *http.Request) {
	v := chi.URLParam(r, "version")
	g := mcver.Resolve(v)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"version":  v,
		"group":    g.String(),
		"features": g.Features(),
	})
}
