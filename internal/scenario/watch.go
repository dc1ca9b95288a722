package scenario

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-runs the scenario at path every time its file changes, calling
// onResult with the new outcome until ctx is cancelled. A write to the
// file's containing directory is what fsnotify reports on most editors'
// save-via-rename, so the directory (not the file) is watched.
func Watch(ctx context.Context, path string, onResult func(*Result)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	runOnce := func() {
		sc, err := Load(path)
		if err != nil {
			onResult(&Result{Path: path, Err: err})
			return
		}
		res := sc.Run()
		res.Path = path
		onResult(res)
	}
	runOnce()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
