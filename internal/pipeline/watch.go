package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lesedi-io/lesedi/internal/camera"
)

// Watch reduces every raw exposure that appears in dir until ctx is done.
// Frame names are taken relative to dir, so the pipeline store must be
// rooted there. Subdirectories are not watched.
func (p *Pipeline) Watch(ctx context.Context, dir string, mode Mode) error {
	if _, err := p.Calibration(mode); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	p.logger.Info("Watching for raw frames", "dir", dir, "mode", mode)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			p.logger.Error(err, "Watch error", "dir", dir)
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			name, ok := rawExposure(dir, ev.Name)
			if !ok {
				continue
			}
			if _, err := p.ReduceRaw(ctx, mode, name); err != nil {
				p.logger.Error(err, "Failed to reduce frame", "frame", name)
			}
		}
	}
}

// rawExposure returns the store name of path when it is a raw exposure.
func rawExposure(dir, path string) (string, bool) {
	name, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	f, err := camera.ParseFilename(filepath.ToSlash(name))
	if err != nil || f.Reduced || f.Type != camera.FrameExposure {
		return "", false
	}
	return filepath.ToSlash(name), true
}
