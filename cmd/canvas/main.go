package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tailored-agentic-units/canvas/observability"
	"github.com/tailored-agentic-units/canvas/store"
)

type options struct {
	configFile string
	actions    string
	initial    string
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "Path to store config file (JSON, TOML or YAML)")
	flag.StringVar(&opts.actions, "actions", "-", "Path to a JSON-lines action file; - reads stdin")
	flag.StringVar(&opts.initial, "initial", "", "Initial page widget id (overrides config; empty keeps the configured id)")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging to stderr")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens so deferred cleanup happens before main
// exits on error.
func run(opts options, stdout io.Writer) error {
	cfg, err := store.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.initial != "" {
		cfg.InitialPageWidgetID = opts.initial
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	configured, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return fmt.Errorf("failed to resolve observer: %w", err)
	}
	recorder := observability.NewRecorder()

	s, err := store.New(cfg, store.WithObserver(observability.Fanout(configured, recorder)))
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	in, closeInput, err := openActions(opts.actions)
	if err != nil {
		return fmt.Errorf("failed to open actions: %w", err)
	}
	defer closeInput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := replay(ctx, s, in); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	out, err := json.Marshal(s.State())
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	fmt.Fprintf(stdout, "State: %s\n", out)
	fmt.Fprintf(stdout, "Revision: %d\n", s.Revision())
	fmt.Fprintf(stdout, "Ignored: %d\n", recorder.Count(store.EventIgnored))
	fmt.Fprintf(stdout, "Rejected: %d\n", recorder.Count(store.EventRejected))
	return nil
}

func openActions(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// replay dispatches one action envelope per non-blank line. Lines have no
// length limit. Lines the store rejects are reported and skipped.
func replay(ctx context.Context, s *store.Store, r io.Reader) error {
	reader := bufio.NewReader(r)
	line := 0
	for {
		chunk, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}

		if len(chunk) > 0 {
			line++
			if raw := bytes.TrimSpace(chunk); len(raw) > 0 {
				if _, err := s.DispatchRaw(ctx, raw); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
				}
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}
