package engine

import "github.com/google/uuid"

// PlayerID identifies a player across both rosters of a game.
type PlayerID = uuid.UUID

// LineupSize is the number of players each team has on court.
const LineupSize = 5

// Possession says which team controls the ball.
type Possession uint8

const (
	Home Possession = iota
	Away
)

// Flip returns the other side. The ball changing hands is always expressed
// as input.Possession.Flip().
func (p Possession) Flip() Possession {
	if p == Home {
		return Away
	}
	return Home
}

func (p Possession) String() string {
	if p == Home {
		return "home"
	}
	return "away"
}

// Advantage records which side won a one-on-one contest. The next action
// reads it to bias its own roll.
type Advantage uint8

const (
	Neutral Advantage = iota
	Attack
	Defense
)

func (a Advantage) String() string {
	switch a {
	case Attack:
		return "attack"
	case Defense:
		return "defense"
	default:
		return "neutral"
	}
}
