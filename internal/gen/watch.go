package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/logger"
)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watch calls fn every time one of paths changes, until ctx is done.
// Files are watched through their directory so editors that replace files
// on save are still seen; directories trigger on any entry. Bursts of
// events within debounce collapse into one call. Errors from fn are logged
// and do not stop watching.
func Watch(ctx context.Context, paths []string, debounce time.Duration, log *zap.SugaredLogger, fn func(context.Context) error) error {
	log = logger.OrNop(log)

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	files := make(map[string]bool)
	dirs := make(map[string]bool)

	for _, p := range paths {
		if p == "" {
			continue
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "watching %s", p)
		}

		dir := abs
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			dirs[abs] = true
		} else {
			files[abs] = true
			dir = filepath.Dir(abs)
		}

		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watching %s", dir)
		}
	}

	relevant := func(name string) bool {
		abs, err := filepath.Abs(name)
		if err != nil {
			return false
		}

		if strings.HasPrefix(filepath.Base(abs), ".") {
			return false
		}

		return files[abs] || dirs[filepath.Dir(abs)]
	}

	log.Infow("watching for changes", "paths", paths)

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if !relevant(event.Name) {
				continue
			}

			log.Debugw("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Warnw("watcher error", "error", err)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				log.Errorw("regeneration failed", "error", err)
			}
		}
	}
}
