package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is one re-read of the config file after it changed on disk.
type Reload struct {
	Config Config
	Err    error
}

// Watch reloads path whenever it is written or created (a save that
// renames a temp file into place counts as a create) and delivers the
// result on the returned channel until ctx is done.
// The directory is watched rather than the file so editors that replace
// the file on save are still seen. An unread reload is replaced by a newer
// one.
func Watch(ctx context.Context, path string, log *slog.Logger) (<-chan Reload, error) {
	if log == nil {
		log = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	abs = filepath.Join(dir, filepath.Base(abs))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				select {
				case <-out:
					log.Debug("config reload superseded", "path", path)
				default:
				}
				out <- Reload{Config: cfg, Err: err}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, nil
}
