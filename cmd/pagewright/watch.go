package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/pagewright/pkg/config"
	pwerrors "github.com/odvcencio/pagewright/pkg/errors"
	"github.com/odvcencio/pagewright/pkg/logging"
	"github.com/odvcencio/pagewright/pkg/pagedetect"
	"github.com/odvcencio/pagewright/pkg/watch"
)

// watchTraces processes every JSON trace file dropped into dir until
// interrupted. Per-file failures are reported and skipped; the watcher
// keeps running.
func watchTraces(dir string, detector *pagedetect.Detector, renderer *renderer, cfg *config.Config, opts *options, logger *logging.Logger) error {
	info, err := os.Stat(dir)
	if err != nil {
		return withExitCode(
			pwerrors.Wrap(err, pwerrors.ErrCodeInvalidInput, "watch directory is not accessible").
				WithContext("dir", dir),
			exitUsage,
		)
	}
	if !info.IsDir() {
		return withExitCode(
			pwerrors.New(pwerrors.ErrCodeInvalidInput, "watch path is not a directory").
				WithContext("dir", dir),
			exitUsage,
		)
	}

	watcher := watch.New()
	watcher.Subscribe("*.json", func(event watch.Event) {
		if err := processTrace(event.Path, detector, renderer, cfg, opts, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", event.Path, err)
		}
	})

	if err := watcher.Start(dir); err != nil {
		return err
	}
	defer watcher.Close()

	go func() {
		for err := range watcher.Errors() {
			if logger != nil {
				logger.Warn(logging.CategoryWatch, "watch_error", err.Error(), nil)
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}()

	if logger != nil {
		logger.Info(logging.CategoryWatch, "watch_started", "watching for trace files", map[string]any{"dir": dir})
	}
	fmt.Fprintf(os.Stderr, "watching %s for trace files (ctrl-c to stop)\n", dir)

	waitForInterrupt()

	if logger != nil {
		logger.Info(logging.CategoryWatch, "watch_stopped", "watcher shut down", map[string]any{"dir": dir})
	}
	return nil
}
