// Package enginetest builds small rosters and games for tests of packages
// that sit on top of the engine.
package enginetest

import (
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/lox/courtside/internal/engine"
	"github.com/rs/zerolog"
)

var namespace = uuid.MustParse("c5a1f0de-2b6a-4b8e-8f3e-7d1c2a9b0e44")

// Team returns five starters and two bench players with every skill set to
// skill.
func Team(name string, skill uint8) *engine.TeamInGame {
	team := &engine.TeamInGame{
		ID:      uuid.NewSHA1(namespace, []byte(name)),
		Name:    name,
		Players: make(map[engine.PlayerID]*engine.Player),
	}
	for i := 0; i < engine.LineupSize+2; i++ {
		p := &engine.Player{
			ID:          uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s/%d", name, i))),
			FirstName:   name,
			LastName:    fmt.Sprintf("Player%d", i+1),
			Height:      195 + uint16(i)*3,
			Athleticism: engine.Athleticism{Quickness: skill, Vertical: skill, Strength: skill, Stamina: skill},
			Offense:     engine.Offense{CloseRange: skill, MediumRange: skill, LongRange: skill},
			Technical:   engine.Technical{BallHandling: skill, Passing: skill, PostMoves: skill, Rebounds: skill},
			Defense:     engine.Defense{PerimeterDefense: skill, InteriorDefense: skill, Steal: skill, Block: skill},
			Mental:      engine.Mental{Vision: skill, OffBallMovement: skill},
		}
		team.Players[p.ID] = p
		if i < engine.LineupSize {
			team.Lineup = append(team.Lineup, p.ID)
		}
	}
	return team
}

// Config returns a game config between two evenly matched test teams.
func Config(seed int64) engine.Config {
	return engine.Config{
		ID:     fmt.Sprintf("test-%d", seed),
		Seed:   seed,
		Home:   Team("Home", 12),
		Away:   Team("Away", 11),
		Logger: zerolog.New(io.Discard),
	}
}

// Game builds a game from Config(seed) with the given observers attached.
func Game(t testing.TB, seed int64, observers ...engine.Observer) *engine.Game {
	t.Helper()
	cfg := Config(seed)
	cfg.Observers = observers
	g, err := engine.NewGame(cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}
