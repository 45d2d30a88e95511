package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn whenever the file at path is created, written, removed or
// renamed, until ctx is done. The parent directory is watched so that the
// file may come and go.
func Watch(ctx context.Context, path string, logger *zap.Logger, fn func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session.Watch: create dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("session.Watch: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("session.Watch: watch %s: %w", dir, err)
	}

	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || event.Op&relevant == 0 {
					continue
				}
				logger.Debug("token file changed", zap.String("op", event.Op.String()))
				fn()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("token watcher", zap.Error(err))
			}
		}
	}()
	return nil
}
