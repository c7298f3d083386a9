// Command gridrouted serves grid shortest-path requests over HTTP.
//
// Configuration comes from GRIDROUTE_* environment variables (PORT is
// honored too) and flags; run with -h for the flag list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/gridroute/internal/config"
	"github.com/katalvlaran/gridroute/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "usage: gridrouted [-addr :8080] [-max-cells N] [-tie-break lowest|highest] [-strategy scan|heap] [-log-level info]")
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "gridrouted:", err)
		os.Exit(2)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)
	gin.SetMode(gin.ReleaseMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting",
		slog.String("addr", cfg.Addr),
		slog.Int("max_cells", cfg.MaxCells),
		slog.String("tie_break", cfg.TieBreak.String()),
		slog.String("strategy", cfg.Strategy.String()),
	)
	if err := server.New(cfg, log, reg).Run(ctx); err != nil {
		log.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
