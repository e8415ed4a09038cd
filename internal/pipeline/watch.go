package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches bursts of file events (editor save storms, bulk
// copies) into one rebuild.
const debounceWindow = 500 * time.Millisecond

// Watch runs the pipeline once, then rebuilds whenever markdown under the
// corpus root changes. Directories are watched recursively; directories
// created while watching are picked up. A failed rebuild is logged and
// watching continues. Returns when ctx is cancelled.
func Watch(ctx context.Context, cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	log := cfg.Logger

	if _, err := Run(cfg); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, cfg.Params.Root); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Params.Root, err)
	}
	log.Info("watching for changes", "root", cfg.Params.Root)

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}

	rebuilds := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, ev.Name); err != nil {
						log.Warn("cannot watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			if filepath.Ext(ev.Name) == ".md" {
				log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
				debounce.Reset(debounceWindow)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-debounce.C:
			rebuilds++
			if !cfg.Quiet {
				FormatWatchBanner(cfg.Output, rebuilds)
			}
			if _, err := Run(cfg); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		}
	}
}

// watchRecursive adds root and every directory below it to the watcher.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
