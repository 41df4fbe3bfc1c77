// Command pagewright partitions recorded browser traces into named page
// segments. It reads a trace file (or watches a directory of them), runs
// the detection pipeline, and renders the segments as a table or JSON.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/pagewright/pkg/config"
	pwerrors "github.com/odvcencio/pagewright/pkg/errors"
	"github.com/odvcencio/pagewright/pkg/logging"
	"github.com/odvcencio/pagewright/pkg/pagedetect"
	"github.com/odvcencio/pagewright/pkg/trace"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

type options struct {
	tracePath     string
	configPath    string
	format        string
	minConfidence float64
	outPath       string
	watchDir      string
	metricsAddr   string
	noColor       bool
	showVersion   bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{minConfidence: -1}
	fs := flag.NewFlagSet("pagewright", flag.ContinueOnError)
	fs.StringVar(&opts.tracePath, "trace", "", "path to a recorded trace file (JSON)")
	fs.StringVar(&opts.configPath, "config", "", "path to a pagewright config file (YAML)")
	fs.StringVar(&opts.format, "format", "", "output format: table or json (overrides config)")
	fs.Float64Var(&opts.minConfidence, "min-confidence", -1, "drop segments below this confidence (overrides config)")
	fs.StringVar(&opts.outPath, "out", "", "write detected segments as JSON to this file")
	fs.StringVar(&opts.watchDir, "watch", "", "watch a directory and process trace files as they appear")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// mergeConfig applies command-line overrides on top of the loaded file.
func mergeConfig(cfg *config.Config, opts *options) error {
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.minConfidence >= 0 {
		cfg.Output.MinConfidence = opts.minConfidence
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Printf("pagewright %s (commit %s, built %s)\n", version, commit, buildDate)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}

func run(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	if err := mergeConfig(cfg, opts); err != nil {
		return withExitCode(err, exitConfig)
	}

	if opts.tracePath == "" && opts.watchDir == "" {
		return withExitCode(
			pwerrors.New(pwerrors.ErrCodeInvalidInput, "either -trace or -watch is required"),
			exitUsage,
		)
	}

	var logger *logging.Logger
	if cfg.Logging.Dir != "" {
		runID := ulid.Make().String()
		logger, err = logging.NewLogger(cfg.Logging.Dir, runID)
		if err != nil {
			return withExitCode(err, exitConfig)
		}
		defer logger.Close()
		if cfg.Logging.Level != "" {
			logger.SetMinLevel(logging.Level(cfg.Logging.Level))
		}
	}

	if opts.metricsAddr != "" {
		go serveMetrics(opts.metricsAddr)
	}

	detector := pagedetect.NewDetector(cfg.Keywords)
	detector.SetLogger(logger)

	renderer := newRenderer(cfg.Output.Format, opts.noColor)

	if opts.watchDir != "" {
		return watchTraces(opts.watchDir, detector, renderer, cfg, opts, logger)
	}
	return processTrace(opts.tracePath, detector, renderer, cfg, opts, logger)
}

// processTrace runs the full pipeline over one trace file: load, detect,
// filter by confidence, render, optionally export.
func processTrace(path string, detector *pagedetect.Detector, renderer *renderer, cfg *config.Config, opts *options, logger *logging.Logger) error {
	tr, err := trace.Load(path)
	if err != nil {
		if logger != nil {
			logger.Error(logging.CategoryTrace, "trace_load_failed", err.Error(), map[string]any{"path": path})
		}
		return withExitCode(err, exitTrace)
	}
	if logger != nil {
		logger.SetTraceID(tr.ID)
		logger.Info(logging.CategoryTrace, "trace_loaded", "trace file loaded", map[string]any{
			"path":    path,
			"actions": len(tr.Actions),
		})
	}

	segments := detector.DetectPages(tr.Actions, nil)
	segments = filterByConfidence(segments, cfg.Output.MinConfidence)

	if err := renderer.render(os.Stdout, tr, segments); err != nil {
		return err
	}
	if opts.outPath != "" {
		if err := exportSegments(opts.outPath, tr, segments); err != nil {
			if logger != nil {
				logger.Error(logging.CategoryExport, "export_failed", err.Error(), map[string]any{"path": opts.outPath})
			}
			return withExitCode(err, exitExport)
		}
		if logger != nil {
			logger.Info(logging.CategoryExport, "segments_exported", "segment list written", map[string]any{
				"path":     opts.outPath,
				"segments": len(segments),
			})
		}
	}
	return nil
}

// filterByConfidence drops segments the caller considers too uncertain.
func filterByConfidence(segments []pagedetect.PageSegment, min float64) []pagedetect.PageSegment {
	if min <= 0 {
		return segments
	}
	kept := segments[:0]
	for _, seg := range segments {
		if seg.Confidence >= min {
			kept = append(kept, seg)
		}
	}
	return kept
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
	}
}

// waitForInterrupt blocks until SIGINT or SIGTERM.
func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
