package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/logging"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSandbox loads the config and builds its reaction rules. A non-empty
// preset replaces the configured boundary.
func loadSandbox(preset string) (config.SandboxConfig, *reaction.Registry) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if preset != "" {
		if err := config.ApplyBoundaryPreset(&cfg, config.BoundaryPreset(preset)); err != nil {
			fail("%v", err)
		}
	}
	rules, err := cfg.Registry()
	if err != nil {
		fail("%v", err)
	}
	return cfg, rules
}

// fileLogger opens the log file for a TUI run. Logging falls back to a
// discarding logger when the file cannot be opened.
func fileLogger() (*log.Logger, io.Closer) {
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	logger, err := logging.New(f, flagLogLevel, "sandbox")
	if err != nil {
		f.Close()
		fail("%v", err)
	}
	return logger, f
}

// openStore opens the session database. The sandbox still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		logger.Warn("could not open session database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the run to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
