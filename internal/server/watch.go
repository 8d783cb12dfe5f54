package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// reloadDebounce absorbs the burst of events editors emit on save.
const reloadDebounce = 250 * time.Millisecond

// Watch reloads the catalog from path whenever the file changes, until ctx
// is cancelled. A file that fails to load is logged and the previous
// catalog stays in place.
//
// The parent directory is watched rather than the file so that editors
// that save by rename keep triggering reloads.
func (s *Server) Watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "watch %s", filepath.Dir(abs))
	}
	s.logger.Info("watching catalog", "path", abs)

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			reload = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "err", err)

		case <-reload:
			reload = nil
			s.reload(abs)
		}
	}
}

func (s *Server) reload(path string) {
	c, err := tier.Load(path)
	if err != nil {
		s.logger.Error("catalog reload failed, keeping previous", "path", path, "err", err)
		return
	}
	s.SetCatalog(c)
	s.logger.Info("catalog reloaded", "levels", c.Len(), "groups", len(c.Groups))
}
