package pathfinder

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// ComputePath returns the cells of one shortest path from start to end,
// both inclusive, through free 4-adjacent cells of the rows×cols grid
// described by occupancy (row-major, true = blocked).
//
// The result is empty, not nil, when end is unreachable.
// Errors: gridgraph.ErrEmptyGrid, gridgraph.ErrShapeMismatch,
// gridgraph.ErrIndexOutOfRange, or an option error from package dijkstra.
func ComputePath(rows, cols int, occupancy []bool, start, end int, opts ...Option) ([]int, error) {
	res, err := Compute(rows, cols, occupancy, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Compute is ComputePath with the full solver Result.
func Compute(rows, cols int, occupancy []bool, start, end int, opts ...Option) (dijkstra.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	g, err := gridgraph.NewGrid(rows, cols, occupancy)
	if err != nil {
		return dijkstra.Result{}, err
	}
	if err = g.CheckIndex(start); err != nil {
		return dijkstra.Result{}, err
	}
	if err = g.CheckIndex(end); err != nil {
		return dijkstra.Result{}, err
	}

	log.Debug("compute path",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("start", start),
		slog.Int("end", end),
		slog.Bool("start_blocked", g.Blocked(start)),
		slog.Bool("end_blocked", g.Blocked(end)),
	)

	res, err := dijkstra.ShortestPath(gridgraph.Build(g), start, end,
		dijkstra.WithTieBreak(cfg.TieBreak),
		dijkstra.WithStrategy(cfg.Strategy),
	)
	if err != nil {
		return dijkstra.Result{}, err
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("path computed",
			slog.Bool("found", res.Found()),
			slog.Int("distance", res.Distance),
			slog.Int("expanded", res.Expanded),
			slog.Any("path", res.Path),
		)
	}

	return res, nil
}
