package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/roster"
	"github.com/lox/courtside/internal/wire"
)

// ErrMismatch is returned when a replay does not reproduce a result.
var ErrMismatch = errors.New("replay does not match result")

// VerifyCmd replays the seed of a result file and compares the outcome.
type VerifyCmd struct {
	MatchFlags `embed:""`

	File string `arg:"" help:"Result file written by play --result" type:"existingfile"`
}

func (c *VerifyCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	res, err := readResult(c.File)
	if err != nil {
		return err
	}
	teams, err := roster.Load(c.Rosters)
	if err != nil {
		return err
	}
	replayed, err := replay(c.MatchFlags, teams, res)
	if err != nil {
		return err
	}
	if err := compare(res, replayed); err != nil {
		return err
	}

	logger.Info().
		Str("game_id", res.GameID).
		Int64("seed", res.Seed).
		Str("digest", res.Digest).
		Msg("Result verified")
	return nil
}

// replay plays the result's seed between the teams it names.
func replay(flags MatchFlags, teams []*engine.TeamInGame, res *wire.Result) (*wire.Result, error) {
	m, err := flags.loadWith(teams, res.Home.Name, res.Away.Name)
	if err != nil {
		return nil, err
	}
	g, err := engine.NewGame(engine.Config{
		ID:     res.GameID,
		Seed:   res.Seed,
		Home:   m.home,
		Away:   m.away,
		Clock:  m.clock,
		Tuning: m.tuning,
	})
	if err != nil {
		return nil, err
	}
	if err := g.Run(context.Background()); err != nil {
		return nil, err
	}
	out, err := wire.FromGame(g)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func compare(want, got *wire.Result) error {
	if want.Home.Score != got.Home.Score || want.Away.Score != got.Away.Score {
		return fmt.Errorf("%w: score %d-%d, replay %d-%d", ErrMismatch,
			want.Home.Score, want.Away.Score, got.Home.Score, got.Away.Score)
	}
	if len(want.Actions) != len(got.Actions) {
		return fmt.Errorf("%w: %d actions, replay %d", ErrMismatch, len(want.Actions), len(got.Actions))
	}
	for i := range want.Actions {
		if want.Actions[i] != got.Actions[i] {
			return fmt.Errorf("%w: first difference at action %d (%s vs %s)", ErrMismatch,
				i, want.Actions[i].Description, got.Actions[i].Description)
		}
	}
	if want.Digest != got.Digest {
		return fmt.Errorf("%w: digest %s, replay %s", ErrMismatch, want.Digest, got.Digest)
	}
	return nil
}
