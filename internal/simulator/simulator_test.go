package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/engine/enginetest"
	"github.com/lox/courtside/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(games, workers int) Config {
	return Config{
		Games:   games,
		Seed:    100,
		Workers: workers,
		Timeout: 10 * time.Second,
		Home:    enginetest.Team("Home", 14),
		Away:    enginetest.Team("Away", 9),
		Logger:  zerolog.New(io.Discard),
	}
}

func TestNewDefaultsWorkers(t *testing.T) {
	s := New(testConfig(1, 0))
	assert.Positive(t, s.config.Workers)
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	serial, err := New(testConfig(12, 1)).Run(context.Background())
	require.NoError(t, err)
	parallel, err := New(testConfig(12, 4)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, serial.Games)
	assert.Equal(t, serial.Values, parallel.Values)
	assert.Equal(t, serial.HomePoints, parallel.HomePoints)
	assert.Equal(t, serial.Actions, parallel.Actions)
}

func TestRunMatchesSingleGames(t *testing.T) {
	cfg := testConfig(3, 2)
	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		g, err := engine.NewGame(engine.Config{Seed: seed, Home: cfg.Home, Away: cfg.Away, Logger: cfg.Logger})
		require.NoError(t, err)
		require.NoError(t, g.Run(context.Background()))
		r := Summarize(g)
		assert.Equal(t, float64(r.Margin()), stats.Values[i], "seed %d", seed)
	}
}

func TestStrongerTeamWinsMostGames(t *testing.T) {
	stats, err := New(testConfig(40, 4)).Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, stats.HomeWinRate(), 0.5)
	assert.Positive(t, stats.Mean())
}

func TestRunFeedsObservers(t *testing.T) {
	cfg := testConfig(5, 3)
	m := metrics.NewManager()
	cfg.Observers = []engine.Observer{m.Observer()}
	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, stats, "Home", "Away")
	assert.Contains(t, buf.String(), "Games played: 5")
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := New(testConfig(0, 1)).Run(context.Background())
	assert.Error(t, err)

	cfg := testConfig(2, 1)
	cfg.Away = cfg.Home
	_, err = New(cfg).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testConfig(4, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	g := enginetest.Game(t, 3)
	require.NoError(t, g.Run(context.Background()))

	r := Summarize(g)
	home, away := g.Score()
	assert.Equal(t, home-away, r.Margin())
	assert.Equal(t, int64(3), r.Seed)
	assert.Equal(t, len(g.Log()), r.Actions)

	turnovers := 0
	for _, out := range g.Log() {
		if out.Situation == engine.Turnover {
			turnovers++
		}
	}
	assert.Equal(t, turnovers, r.Turnovers)
}
