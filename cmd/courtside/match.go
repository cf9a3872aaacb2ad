package main

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/roster"
)

// MatchFlags select the teams and rules of a game.
type MatchFlags struct {
	Rosters       string `help:"Roster HCL file" default:"examples/rosters.hcl" type:"path" env:"COURTSIDE_ROSTERS"`
	Home          string `help:"Home team name (default: first team in the roster file)" env:"COURTSIDE_HOME"`
	Away          string `help:"Away team name (default: second team in the roster file)" env:"COURTSIDE_AWAY"`
	Tuning        string `help:"Tuning HCL file; a missing file selects the defaults" type:"path" env:"COURTSIDE_TUNING"`
	Quarters      int    `help:"Number of quarters" default:"4" env:"COURTSIDE_QUARTERS"`
	QuarterLength int    `help:"Quarter length in seconds" default:"600" env:"COURTSIDE_QUARTER_LENGTH"`
}

// match is a resolved MatchFlags.
type match struct {
	home   *engine.TeamInGame
	away   *engine.TeamInGame
	clock  engine.Clock
	tuning *engine.Tuning
}

func (f MatchFlags) load() (match, error) {
	teams, err := roster.Load(f.Rosters)
	if err != nil {
		return match{}, err
	}
	return f.loadWith(teams, f.Home, f.Away)
}

// loadWith resolves the match for explicit team names.
func (f MatchFlags) loadWith(teams []*engine.TeamInGame, home, away string) (match, error) {
	h, a, err := roster.Matchup(teams, home, away)
	if err != nil {
		return match{}, err
	}

	if f.QuarterLength <= 0 || uint64(f.QuarterLength) > math.MaxUint32 {
		return match{}, fmt.Errorf("quarter length must be between 1 and %d, got %d", uint64(math.MaxUint32), f.QuarterLength)
	}
	clock := engine.Clock{QuarterLength: engine.Tick(f.QuarterLength), Quarters: f.Quarters}
	if err := clock.Validate(); err != nil {
		return match{}, err
	}

	tuning := engine.DefaultTuning()
	if f.Tuning != "" {
		if tuning, err = engine.LoadTuning(f.Tuning); err != nil {
			return match{}, fmt.Errorf("tuning %s: %w", f.Tuning, err)
		}
	}
	return match{home: h, away: a, clock: clock, tuning: &tuning}, nil
}

// seedOrNow returns *seed, or a time based seed when none was given.
func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
