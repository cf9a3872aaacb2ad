package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxSkill is the top of every skill scale.
const MaxSkill = 20

type Athleticism struct {
	Quickness uint8
	Vertical  uint8
	Strength  uint8
	Stamina   uint8
}

type Offense struct {
	CloseRange  uint8
	MediumRange uint8
	LongRange   uint8
}

type Technical struct {
	BallHandling uint8
	Passing      uint8
	PostMoves    uint8
	Rebounds     uint8
}

type Defense struct {
	PerimeterDefense uint8
	InteriorDefense  uint8
	Steal            uint8
	Block            uint8
}

type Mental struct {
	Vision          uint8
	OffBallMovement uint8
}

// Player is the engine's read-only view of a roster entry. Attributes never
// change during a game.
type Player struct {
	ID          PlayerID
	FirstName   string
	LastName    string
	Height      uint16 // cm
	Athleticism Athleticism
	Offense     Offense
	Technical   Technical
	Defense     Defense
	Mental      Mental
}

// JumpScore is the vertical reach used for jump balls and rebounds.
func (p *Player) JumpScore() int {
	h := int(p.Height)
	if h < 150 {
		h = 150
	}
	return int(p.Athleticism.Vertical) + (h-150)/4
}

// Tactic biases which play a team calls when it brings the ball up.
type Tactic uint8

const (
	Balanced Tactic = iota
	RunAndGun
	Inside
	StarPlayer
)

var tacticNames = map[Tactic]string{
	Balanced:   "balanced",
	RunAndGun:  "run_and_gun",
	Inside:     "inside",
	StarPlayer: "star_player",
}

func (t Tactic) String() string {
	if n, ok := tacticNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseTactic accepts the names printed by Tactic.String; empty means
// Balanced.
func ParseTactic(name string) (Tactic, error) {
	if name == "" {
		return Balanced, nil
	}
	for t, n := range tacticNames {
		if n == name {
			return t, nil
		}
	}
	return Balanced, fmt.Errorf("unknown tactic %q", name)
}

// playWeights orders PickAndRoll, Isolation, PostUp, OffTheScreen.
func (t Tactic) playWeights() []int {
	switch t {
	case RunAndGun:
		return []int{3, 1, 1, 5}
	case Inside:
		return []int{2, 1, 5, 1}
	case StarPlayer:
		return []int{2, 5, 1, 1}
	default:
		return []int{4, 2, 2, 2}
	}
}

// TeamInGame is a roster snapshot taken at tip-off.
type TeamInGame struct {
	ID     uuid.UUID
	Name   string
	Tactic Tactic
	// Lineup holds the five on-court players, indexed by position slot.
	Lineup  []PlayerID
	Players map[PlayerID]*Player
	// InitialTiredness carries fatigue from before the game; absent means rested.
	InitialTiredness map[PlayerID]float32
}

// OnCourt resolves the lineup in slot order.
func (t *TeamInGame) OnCourt() ([]*Player, error) {
	if len(t.Lineup) != LineupSize {
		return nil, fmt.Errorf("%w: %s has %d players on court", ErrMissingParticipant, t.Name, len(t.Lineup))
	}
	players := make([]*Player, len(t.Lineup))
	for i, id := range t.Lineup {
		p, ok := t.Players[id]
		if !ok || p == nil {
			return nil, fmt.Errorf("%w: %s lineup slot %d (%s)", ErrMissingParticipant, t.Name, i, id)
		}
		players[i] = p
	}
	return players, nil
}

// Slot returns the lineup slot of id, or -1 when the player is on the bench.
func (t *TeamInGame) Slot(id PlayerID) int {
	for i, l := range t.Lineup {
		if l == id {
			return i
		}
	}
	return -1
}
