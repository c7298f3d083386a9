package pathfinder

import (
	"log/slog"

	"github.com/katalvlaran/gridroute/dijkstra"
)

// Options configures Compute and ComputePath.
type Options struct {
	// Logger receives Debug records for each call. Defaults to a discarding logger.
	Logger *slog.Logger
	// TieBreak selects among equally short paths.
	TieBreak dijkstra.TieBreak
	// Strategy selects the solver's minimum-selection method.
	Strategy dijkstra.Strategy
}

// Option represents a functional option for configuring a request.
type Option func(*Options)

// WithLogger routes debug records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTieBreak sets the solver tie-break policy.
func WithTieBreak(t dijkstra.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithStrategy sets the solver selection strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns a discarding logger and the solver defaults.
func DefaultOptions() Options {
	d := dijkstra.DefaultOptions()

	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		TieBreak: d.TieBreak,
		Strategy: d.Strategy,
	}
}
