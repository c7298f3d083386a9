// Package config loads gridrouted process settings from the environment
// and command-line flags. Flags override environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/gridroute/dijkstra"
)

// Environment variable names.
const (
	EnvAddr     = "GRIDROUTE_ADDR"
	EnvPort     = "PORT"
	EnvMaxCells = "GRIDROUTE_MAX_CELLS"
	EnvTieBreak = "GRIDROUTE_TIE_BREAK"
	EnvStrategy = "GRIDROUTE_STRATEGY"
	EnvLogLevel = "GRIDROUTE_LOG_LEVEL"
)

// ErrBadMaxCells indicates a non-positive or non-numeric cell limit.
var ErrBadMaxCells = errors.New("config: max cells must be a positive integer")

// Config holds server settings.
type Config struct {
	Addr     string            // Listen address, e.g. ":8080".
	MaxCells int               // Largest rows*cols accepted per request.
	TieBreak dijkstra.TieBreak // Solver tie-break policy.
	Strategy dijkstra.Strategy // Solver selection strategy.
	LogLevel slog.Level        // Minimum level written by the server logger.
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     ":8080",
		MaxCells: 1 << 16,
		TieBreak: dijkstra.LowestIndex,
		Strategy: dijkstra.BinaryHeap,
		LogLevel: slog.LevelInfo,
	}
}

// Load starts from Default, applies environment variables read through
// getenv, then parses args (without the program name) as flags.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	addr := cfg.Addr
	if port := getenv(EnvPort); port != "" {
		addr = ":" + port
	}
	if v := getenv(EnvAddr); v != "" {
		addr = v
	}
	maxCells := strconv.Itoa(cfg.MaxCells)
	if v := getenv(EnvMaxCells); v != "" {
		maxCells = v
	}
	tieBreak := stringOr(getenv(EnvTieBreak), cfg.TieBreak.String())
	strategy := stringOr(getenv(EnvStrategy), cfg.Strategy.String())
	logLevel := stringOr(getenv(EnvLogLevel), cfg.LogLevel.String())

	fs := flag.NewFlagSet("gridrouted", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&addr, "addr", addr, "listen address")
	fs.StringVar(&maxCells, "max-cells", maxCells, "largest rows*cols accepted per request")
	fs.StringVar(&tieBreak, "tie-break", tieBreak, "tie-break policy: lowest or highest")
	fs.StringVar(&strategy, "strategy", strategy, "selection strategy: scan or heap")
	fs.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.Addr = addr
	n, err := strconv.Atoi(maxCells)
	if err != nil || n <= 0 {
		return Config{}, fmt.Errorf("%w: %q", ErrBadMaxCells, maxCells)
	}
	cfg.MaxCells = n
	if cfg.TieBreak, err = dijkstra.ParseTieBreak(tieBreak); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Strategy, err = dijkstra.ParseStrategy(strategy); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("config: log level: %w", err)
	}

	return cfg, nil
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
