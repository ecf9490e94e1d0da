package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/chars/packs"
	"github.com/vovakirdan/tui-fighter/internal/config"
)

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logToFile moves logging off the terminal while a full-screen program runs.
// It returns a function that closes the file.
func logToFile(logger *log.Logger) func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".fighter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "fighter.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "err", err)
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// loadGame reads the tuning file and every character pack.
func loadGame(logger *log.Logger) (config.FighterConfig, *chars.Store, error) {
	cfg, err := config.LoadFighter(flagConfig)
	if err != nil {
		return config.FighterConfig{}, nil, err
	}

	store := chars.NewStore()
	loader := &packs.Loader{Root: flagChars, Logger: logger}
	n := loader.LoadRoster(store)
	logger.Info("character packs loaded", "count", n, "root", packRoot())

	return cfg, store, nil
}

func packRoot() string {
	if flagChars == "" {
		return "(built-in)"
	}
	return flagChars
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
