package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pixelcosm/starsmith"
)

// watchDebounce is how long the config file must stay quiet before a
// regeneration starts. Editors often fire several events per save.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate sprites whenever the config file changes",
	Long: `Watches the configuration file and reruns generation each time it
changes, debounced against rapid saves. Category flags narrow what gets
regenerated; without them every category is rendered.

Requires --config. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	addSelectionFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("watch requires --config")
	}

	cfgAbs, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}

	sel := selection()
	if sel.None() {
		sel = starsmith.AllCategories()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that save via
	// rename-replace would otherwise drop the watch after the first save.
	if err := watcher.Add(filepath.Dir(cfgAbs)); err != nil {
		return err
	}

	regenerate := func() {
		cfg, err := loadConfig()
		if err != nil {
			starsmith.Logger().Error("config reload failed", "error", err)
			return
		}
		gen := starsmith.NewGenerator(cfg,
			starsmith.WithWorkers(workers),
			starsmith.WithPreviews(genPreviews),
		)
		defer gen.Close()
		if _, err := gen.Run(sel); err != nil {
			starsmith.Logger().Error("generation failed", "error", err)
		}
	}

	regenerate()
	starsmith.Logger().Info("watching for config changes", "config", cfgAbs)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var lastEvent time.Time
	dirty := false

	for {
		select {
		case <-ctx.Done():
			starsmith.Logger().Info("watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != cfgAbs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			dirty = true
			lastEvent = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			starsmith.Logger().Warn("watch error", "error", err)

		case <-ticker.C:
			if dirty && time.Since(lastEvent) >= watchDebounce {
				dirty = false
				starsmith.Logger().Info("config changed, regenerating")
				regenerate()
			}
		}
	}
}
