package engine

import (
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// newTestPlayer returns a player with every skill set to skill.
func newTestPlayer(team string, n int, skill uint8) *Player {
	return &Player{
		ID:          uuid.NewSHA1(testNamespace, []byte(fmt.Sprintf("%s-%d", team, n))),
		FirstName:   team,
		LastName:    fmt.Sprintf("%s%d", team, n),
		Height:      200,
		Athleticism: Athleticism{Quickness: skill, Vertical: skill, Strength: skill, Stamina: skill},
		Offense:     Offense{CloseRange: skill, MediumRange: skill, LongRange: skill},
		Technical:   Technical{BallHandling: skill, Passing: skill, PostMoves: skill, Rebounds: skill},
		Defense:     Defense{PerimeterDefense: skill, InteriorDefense: skill, Steal: skill, Block: skill},
		Mental:      Mental{Vision: skill, OffBallMovement: skill},
	}
}

// newTestTeam returns five starters and two bench players.
func newTestTeam(name string, skill uint8) *TeamInGame {
	team := &TeamInGame{
		ID:      uuid.NewSHA1(testNamespace, []byte(name)),
		Name:    name,
		Players: make(map[PlayerID]*Player),
	}
	for i := 0; i < LineupSize+2; i++ {
		p := newTestPlayer(name, i, skill)
		team.Players[p.ID] = p
		if i < LineupSize {
			team.Lineup = append(team.Lineup, p.ID)
		}
	}
	return team
}

// testCourt is a hand-built Court for exercising single actions.
type testCourt struct {
	home    *TeamInGame
	away    *TeamInGame
	ledger  Ledger
	clock   Clock
	tuning  Tuning
	opening Possession
}

func newTestCourt(home, away *TeamInGame) *testCourt {
	return &testCourt{
		home:   home,
		away:   away,
		ledger: NewLedger(home, away),
		clock:  DefaultClock(),
		tuning: DefaultTuning(),
	}
}

func (c *testCourt) Team(p Possession) *TeamInGame {
	if p == Home {
		return c.home
	}
	return c.away
}

func (c *testCourt) Stats(id PlayerID) (GameStats, bool) {
	return c.ledger.Get(id)
}

func (c *testCourt) Clock() Clock {
	return c.clock
}

func (c *testCourt) Tuning() Tuning {
	return c.tuning
}

func (c *testCourt) OpeningPossession() Possession {
	return c.opening
}

// lowRollTuning keeps rolls in [0, 1] so skills decide every contest.
func lowRollTuning() Tuning {
	t := DefaultTuning()
	t.RollMax = 1
	return t
}

func newTestConfig(seed int64) Config {
	return Config{
		ID:     "test",
		Seed:   seed,
		Home:   newTestTeam("home", 12),
		Away:   newTestTeam("away", 11),
		Logger: testLogger(),
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := NewGame(newTestConfig(seed))
	require.NoError(t, err)
	return g
}

func player(team *TeamInGame, slot int) *Player {
	return team.Players[team.Lineup[slot]]
}
