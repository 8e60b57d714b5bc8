package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/mccmd/internal/app"
	"github.com/jmoiron/mccmd/internal/app/mcformat"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/preset"
	flag "github.com/spf13/pflag"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	var (
		listen      string
		mcVersion   string
		presetPath  string
		renderPath  string
		preview     bool
		showVersion bool
		verbose     int
		quit        bool
	)

	flag.StringVar(&listen, "addr", "0.0.0.0:8222", "listen address for the web UI (host:port)")
	flag.StringVar(&mcVersion, "mcv", "1.21.5", "target Minecraft version (e.g., 1.20.1)")
	flag.StringVar(&presetPath, "presets", "", "preset file listed on the preview page")
	flag.StringVar(&renderPath, "render", "", "render the commands in a preset file and exit")
	flag.BoolVar(&preview, "preview", false, "with --render, print a terminal preview of each preset's text")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.CountVarP(&verbose, "verbose", "v", "increase verbosity; repeat for more detail")
	flag.BoolVarP(&quit, "quit", "q", false, "initialize (load templates and presets), then exit without serving")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mccmd [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose > 0 {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("starting", "verbosity", verbose, "mc", mcVersion, "group", mcver.Resolve(mcVersion))

	if renderPath != "" {
		// a file's own version wins unless --mcv was given
		v := ""
		if flag.CommandLine.Changed("mcv") {
			v = mcVersion
		}
		if err := render(renderPath, v, mcVersion, preview); err != nil {
			log.Fatalf("render: %v", err)
		}
		return
	}

	fmt.Printf("mccmd %s\n", version)

	a, err := app.New(presetPath, mcVersion, verbose)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	if quit {
		n := 0
		if a.Presets != nil {
			n = len(a.Presets.Presets)
		}
		log.Printf("initialized successfully; loaded %d presets; quitting (--quit)", n)
		return
	}
	log.Printf("listening on http://%s (mc %s)", listen, mcVersion)
	if err := httpListenAndServe(listen, a.Router()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// render prints the commands of the preset file at path, one per line.
// Without a version the file's version is used, then fallback.
func render(path, version, fallback string, preview bool) error {
	f, err := preset.Load(path)
	if err != nil {
		return err
	}
	if version == "" {
		version = f.Version
	}
	if version == "" {
		version = fallback
	}
	results, err := f.Render(context.Background(), version)
	if err != nil {
		return err
	}
	slog.Debug("rendered presets", "file", path, "version", version, "count", len(results))
	for i, res := range results {
		if preview {
			if text := f.Presets[i].Text; text != "" {
				fmt.Printf("# %s: %s\n", res.Name, mcformat.Terminal(mcformat.ParseRuns(text)))
			}
		}
		fmt.Println(res.Command)
	}
	return nil
}

// httpListenAndServe exists to facilitate testing/mocking if desired.
var httpListenAndServe = func(addr string, h http.Handler) error {
	return http.ListenAndServe(addr, h)
}
