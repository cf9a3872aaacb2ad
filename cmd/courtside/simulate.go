package main

import (
	"os"
	"time"

	"github.com/lox/courtside/cmd/courtside/shared"
	"github.com/lox/courtside/internal/simulator"
)

// SimulateCmd runs a batch of seeded games.
type SimulateCmd struct {
	MatchFlags `embed:""`

	Games   int           `help:"Number of games" default:"1000" env:"COURTSIDE_GAMES"`
	Seed    int64         `help:"Seed of the first game; game i uses seed+i" default:"1" env:"COURTSIDE_SEED"`
	Workers int           `help:"Parallel games (default: GOMAXPROCS)" env:"COURTSIDE_WORKERS"`
	Timeout time.Duration `help:"Per-game timeout" default:"30s"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	m, err := c.load()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Games:   c.Games,
		Seed:    c.Seed,
		Workers: c.Workers,
		Timeout: c.Timeout,
		Home:    m.home,
		Away:    m.away,
		Clock:   m.clock,
		Tuning:  m.tuning,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	logger.Info().
		Int("games", stats.Games).
		Dur("elapsed", elapsed).
		Float64("games_per_sec", float64(stats.Games)/elapsed.Seconds()).
		Msg("Simulation complete")

	simulator.PrintSummary(os.Stdout, stats, m.home.Name, m.away.Name)
	return nil
}
