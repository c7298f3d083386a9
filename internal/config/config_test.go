package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/dijkstra"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	cfg, err := Load(nil, env(map[string]string{
		EnvPort:     "9000",
		EnvMaxCells: "100",
		EnvTieBreak: "highest",
		EnvStrategy: "scan",
		EnvLogLevel: "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 100, cfg.MaxCells)
	assert.Equal(t, dijkstra.HighestIndex, cfg.TieBreak)
	assert.Equal(t, dijkstra.LinearScan, cfg.Strategy)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

	cfg, err = Load(nil, env(map[string]string{EnvPort: "9000", EnvAddr: "127.0.0.1:7000"}))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr, "explicit address wins over PORT")
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	cfg, err := Load(
		[]string{"-addr", ":1234", "-max-cells", "42", "-strategy", "heap", "-log-level", "warn"},
		env(map[string]string{EnvAddr: ":9999", EnvMaxCells: "7", EnvStrategy: "scan"}),
	)
	require.NoError(t, err)
	assert.Equal(t, ":1234", cfg.Addr)
	assert.Equal(t, 42, cfg.MaxCells)
	assert.Equal(t, dijkstra.BinaryHeap, cfg.Strategy)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]string{"-max-cells", "0"}, env(nil))
	assert.ErrorIs(t, err, ErrBadMaxCells)

	_, err = Load(nil, env(map[string]string{EnvMaxCells: "lots"}))
	assert.ErrorIs(t, err, ErrBadMaxCells)

	_, err = Load([]string{"-tie-break", "random"}, env(nil))
	assert.ErrorIs(t, err, dijkstra.ErrBadTieBreak)

	_, err = Load(nil, env(map[string]string{EnvStrategy: "dfs"}))
	assert.ErrorIs(t, err, dijkstra.ErrBadStrategy)

	_, err = Load([]string{"-log-level", "loud"}, env(nil))
	assert.Error(t, err)

	_, err = Load([]string{"-unknown"}, env(nil))
	assert.Error(t, err)
}
