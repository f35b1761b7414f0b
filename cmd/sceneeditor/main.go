package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"sceneeditor/internal/app"
	"sceneeditor/internal/audio"
	"sceneeditor/internal/config"
	"sceneeditor/internal/editor"
	"sceneeditor/internal/macro"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to editor.toml")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	script := flag.String("script", "", "Lua macro to run at startup")
	flag.Parse()

	// Paths given on the command line are relative to where the user ran
	// the program, not to the executable.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			*configPath = absPath(*configPath)
		case "script":
			*script = absPath(*script)
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn("using default config", "err", err)
	}
	if *logLevel != "" {
		cfg.Editor.LogLevel = *logLevel
	}
	if l, err := config.ParseLevel(cfg.Editor.LogLevel); err == nil {
		level.Set(l)
	} else {
		log.Warn("bad log level", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ed := editor.New(
		editor.WithHistoryLimit(cfg.Editor.HistoryLimit),
		editor.WithDuplicateOffset(cfg.Editor.DuplicateOffset),
		editor.WithLogger(log),
	)

	opts := []app.Option{
		app.WithLevel(level),
		app.WithSounds(func(volume float32) (*audio.Cues, error) {
			return audio.Open(volume, log)
		}),
	}
	if reloads, err := config.Watch(ctx, *configPath, log); err != nil {
		log.Warn("config hot reload disabled", "err", err)
	} else {
		opts = append(opts, app.WithConfigReloads(reloads))
	}

	a := app.New(ed, cfg, log, opts...)

	if *script == "" {
		*script = cfg.Editor.StartupScript
	}
	if *script != "" {
		if err := macro.New(ed, macro.WithLogger(log)).RunFile(ctx, *script); err != nil {
			log.Error("startup script failed", "err", err)
		}
	}

	if err := a.Run(ctx); err != nil {
		log.Error("editor stopped", "err", err)
		os.Exit(1)
	}
}

func absPath(p string) string {
	if p == "" {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
