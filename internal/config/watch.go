package config

import (
	"github.com/dshills/buffalo/internal/config/watcher"
)

// Reloader re-reads a settings file whenever it changes.
type Reloader struct {
	w    *watcher.Watcher
	path string
}

// Watch starts watching path and calls onChange with the re-read settings
// after every change. Reload failures are passed to onError, if set, and
// leave the previous settings in effect.
func Watch(path string, onChange func(Config), onError func(error), opts ...Option) (*Reloader, error) {
	w, err := watcher.New(watcher.WithErrorHandler(onError))
	if err != nil {
		return nil, err
	}

	loadOpts := append([]Option{WithPath(path)}, opts...)
	w.OnChange(func(e watcher.Event) {
		if e.Op == watcher.OpRemove || e.Op == watcher.OpRename {
			return
		}
		cfg, err := Load(loadOpts...)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})

	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Reloader{w: w, path: path}, nil
}

// Path returns the watched file.
func (r *Reloader) Path() string {
	return r.path
}

// Close stops watching.
func (r *Reloader) Close() error {
	return r.w.Close()
}
