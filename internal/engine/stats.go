package engine

import (
	"fmt"
	"sort"
)

// MaxTiredness caps GameStats.Tiredness.
const MaxTiredness float32 = 100

// Bench is the Position of a player not in the starting lineup.
const Bench = -1

// GameStats is one player's in-game ledger entry. Actions emit small
// GameStats deltas which the session merges additively.
type GameStats struct {
	// Position is an assignment made when the ledger is created; Merge never
	// touches it.
	Position         int
	InitialTiredness float32
	Tiredness        float32

	Turnovers          int
	Steals             int
	Assists            int
	Points             int
	TwoPointAttempts   int
	TwoPointMade       int
	ThreePointAttempts int
	ThreePointMade     int
	OffensiveRebounds  int
	DefensiveRebounds  int
	Blocks             int
	PlusMinus          int
}

// AddTiredness adds a fatigue cost scaled down by stamina: a player with
// MaxSkill stamina tires at half the base rate.
func (s *GameStats) AddTiredness(cost float32, stamina uint8) {
	if stamina > MaxSkill {
		stamina = MaxSkill
	}
	s.Tiredness += cost * (1 - float32(stamina)/(2*MaxSkill))
}

// Rest lowers tiredness by amount. Rest events are the only source of
// negative tiredness deltas.
func (s *GameStats) Rest(amount float32) {
	s.Tiredness -= amount
}

// Merge adds delta into a ledger entry. Tiredness is clamped to
// [0, MaxTiredness].
func (s *GameStats) Merge(delta GameStats) {
	s.add(delta)
	if s.Tiredness > MaxTiredness {
		s.Tiredness = MaxTiredness
	}
	if s.Tiredness < 0 {
		s.Tiredness = 0
	}
}

func (s *GameStats) add(delta GameStats) {
	s.Tiredness += delta.Tiredness
	s.Turnovers += delta.Turnovers
	s.Steals += delta.Steals
	s.Assists += delta.Assists
	s.Points += delta.Points
	s.TwoPointAttempts += delta.TwoPointAttempts
	s.TwoPointMade += delta.TwoPointMade
	s.ThreePointAttempts += delta.ThreePointAttempts
	s.ThreePointMade += delta.ThreePointMade
	s.OffensiveRebounds += delta.OffensiveRebounds
	s.DefensiveRebounds += delta.DefensiveRebounds
	s.Blocks += delta.Blocks
	s.PlusMinus += delta.PlusMinus
}

// Rebounds is the sum of offensive and defensive rebounds.
func (s GameStats) Rebounds() int { return s.OffensiveRebounds + s.DefensiveRebounds }

// FieldGoals returns made and attempted field goals.
func (s GameStats) FieldGoals() (made, attempted int) {
	return s.TwoPointMade + s.ThreePointMade, s.TwoPointAttempts + s.ThreePointAttempts
}

// StatsMap carries per-player deltas produced by one action.
type StatsMap map[PlayerID]GameStats

// Add sums delta into the entry for id, so crediting the same player twice
// accumulates instead of overwriting. Deltas are not clamped.
func (m StatsMap) Add(id PlayerID, delta GameStats) {
	cur := m[id]
	cur.add(delta)
	m[id] = cur
}

// IDs returns the keys in a stable order.
func (m StatsMap) IDs() []PlayerID {
	ids := make([]PlayerID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i][:]) < string(ids[j][:])
	})
	return ids
}

// Ledger is the session's mutable stat store, keyed by player.
type Ledger map[PlayerID]*GameStats

// NewLedger creates fresh entries for every rostered player of both teams.
func NewLedger(teams ...*TeamInGame) Ledger {
	l := make(Ledger)
	for _, team := range teams {
		for id := range team.Players {
			entry := &GameStats{Position: team.Slot(id)}
			if t, ok := team.InitialTiredness[id]; ok {
				entry.InitialTiredness = t
				entry.Tiredness = t
			}
			l[id] = entry
		}
	}
	return l
}

// Apply merges every delta. It checks all ids first so a delta naming an
// unknown player leaves the ledger untouched.
func (l Ledger) Apply(deltas ...StatsMap) error {
	for _, m := range deltas {
		for id := range m {
			if _, ok := l[id]; !ok {
				return fmt.Errorf("%w: no ledger entry for %s", ErrMissingParticipant, id)
			}
		}
	}
	for _, m := range deltas {
		for _, id := range m.IDs() {
			l[id].Merge(m[id])
		}
	}
	return nil
}

// Get returns a copy of the entry for id.
func (l Ledger) Get(id PlayerID) (GameStats, bool) {
	s, ok := l[id]
	if !ok {
		return GameStats{}, false
	}
	return *s, true
}

// Clone deep-copies the ledger.
func (l Ledger) Clone() Ledger {
	c := make(Ledger, len(l))
	for id, s := range l {
		cp := *s
		c[id] = &cp
	}
	return c
}
