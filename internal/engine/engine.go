package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"headercheck/internal/config"
	"headercheck/internal/header"
	"headercheck/internal/output"
)

func exitCodeForRun(fatal, partial, wrongs bool) int {
	// Exit code contract:
	// 0 = clean run, every file conformant
	// 1 = violations found (missing or incorrect headers, fixed or not)
	// 2 = partial failure (some paths could not be read)
	// 3 = fatal error (check did not run)
	//
	// When both violations and read errors occur, the violation code wins:
	// CI cares first that non-conformant files exist.
	if fatal {
		return 3
	}
	if wrongs {
		return 1
	}
	if partial {
		return 2
	}
	return 0
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		cs := output.NewConsoleSink(nil, nil, cfg.Output.ConsoleFormat, cfg.Runtime.Verbose, cfg.Output.ConsoleFilterStatus)
		if err := outMgr.AddSink(cs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

type Engine struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{log: log}
}

// Run checks every path in the order given, one at a time, and returns the
// process exit code. Violations are accumulated, never fail-fast: a bad
// file does not stop the files after it from being checked. Duplicate
// paths are checked redundantly.
func (e *Engine) Run(cfg *config.Config, paths []string) int {
	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	checker := &header.Checker{Fix: cfg.Check.Fix}

	if err := outMgr.Write(output.Event{Type: "run.started", Files: len(paths)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	var wrongs, partial bool
	for _, path := range paths {
		e.log.Debug("checking", "path", path)
		res := checker.Check(path)
		switch res.Status {
		case header.StatusFail, header.StatusFixed:
			wrongs = true
		case header.StatusError:
			partial = true
		}
		if err := outMgr.Write(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	code := exitCodeForRun(false, partial, wrongs)
	if err := outMgr.Write(output.Event{Type: "run.finished", ExitCode: code}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if err := outMgr.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = exitCodeForRun(false, true, false)
		}
	}
	return code
}
