// Command gridroute prints the shortest path between two cells of a text grid.
//
// The grid is read from -grid (or stdin) in gridgraph text form:
// one row per line, '.' free and '#' blocked. Output is one JSON object.
//
//	gridroute -grid maze.txt -start 0 -end 24
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/pathfinder"
)

type output struct {
	Path     []int `json:"path"`
	Found    bool  `json:"found"`
	Distance int   `json:"distance"`
	Expanded int   `json:"expanded"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridroute:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gridPath := fs.String("grid", "", "text grid file (default stdin)")
	start := fs.Int("start", 0, "start cell index")
	end := fs.Int("end", -1, "end cell index (default last cell)")
	tieBreak := fs.String("tie-break", dijkstra.LowestIndex.String(), "tie-break policy: lowest or highest")
	strategy := fs.String("strategy", dijkstra.LinearScan.String(), "selection strategy: scan or heap")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tb, err := dijkstra.ParseTieBreak(*tieBreak)
	if err != nil {
		return err
	}
	st, err := dijkstra.ParseStrategy(*strategy)
	if err != nil {
		return err
	}

	in := stdin
	if *gridPath != "" {
		f, err := os.Open(*gridPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	g, err := gridgraph.ParseText(in)
	if err != nil {
		return err
	}
	if *end < 0 {
		*end = g.Size() - 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := pathfinder.Compute(g.Rows(), g.Cols(), g.Occupancy(), *start, *end,
		pathfinder.WithLogger(log),
		pathfinder.WithTieBreak(tb),
		pathfinder.WithStrategy(st),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)

	return enc.Encode(output{
		Path:     res.Path,
		Found:    res.Found(),
		Distance: res.Distance,
		Expanded: res.Expanded,
	})
}
