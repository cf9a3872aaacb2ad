package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coder/quartz"
	"github.com/lox/courtside/cmd/courtside/shared"
	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/fileutil"
	"github.com/lox/courtside/internal/gameid"
	"github.com/lox/courtside/internal/record"
	"github.com/lox/courtside/internal/wire"
)

// PlayCmd plays a single game.
type PlayCmd struct {
	MatchFlags `embed:""`

	Seed      *int64 `help:"Deterministic seed (default: time based)" env:"COURTSIDE_SEED"`
	Quiet     bool   `help:"Do not print the play-by-play"`
	Box       bool   `help:"Print the box score at the end" default:"true" negatable:""`
	RecordDir string `help:"Write a TOML game record into this directory" type:"path" env:"COURTSIDE_RECORD_DIR"`
	Result    string `help:"Write the msgpack result (for verify) to this file" type:"path"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	m, err := c.load()
	if err != nil {
		return err
	}
	seed := seedOrNow(c.Seed)
	id := gameid.FromSeed(seed)

	var observers []engine.Observer
	if !c.Quiet {
		observers = append(observers, playPrinter{w: os.Stdout})
	}
	if c.RecordDir != "" {
		path := filepath.Join(c.RecordDir, fmt.Sprintf("game-%s.toml", id))
		monitor, err := record.NewMonitor(path, 0, quartz.NewReal(), logger)
		if err != nil {
			return err
		}
		observers = append(observers, monitor)
	}

	g, err := engine.NewGame(engine.Config{
		ID:        id,
		Seed:      seed,
		Home:      m.home,
		Away:      m.away,
		Clock:     m.clock,
		Tuning:    m.tuning,
		Logger:    logger,
		Observers: observers,
	})
	if err != nil {
		return err
	}
	logger.Info().Str("game_id", id).Int64("seed", seed).
		Str("home", m.home.Name).Str("away", m.away.Name).
		Msg("Tip-off")

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()
	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game %s: %w", id, err)
	}

	if c.Box {
		printBoxScore(os.Stdout, g.BoxScore())
	}
	if c.Result != "" {
		if err := writeResult(c.Result, g); err != nil {
			return err
		}
		logger.Info().Str("path", c.Result).Msg("Result written")
	}
	return nil
}

func writeResult(path string, g *engine.Game) error {
	res, err := wire.FromGame(g)
	if err != nil {
		return err
	}
	data, err := wire.Marshal(&res)
	if err != nil {
		return err
	}
	return fileutil.WriteFile(path, data, 0o644)
}

func readResult(path string) (*wire.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var res wire.Result
	if err := wire.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if res.Type != wire.TypeResult {
		return nil, fmt.Errorf("%s: %w %q", path, wire.ErrUnknownMessageType, res.Type)
	}
	return &res, nil
}
