package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTirednessScalesWithStamina(t *testing.T) {
	var fresh, fit GameStats
	fresh.AddTiredness(1, 0)
	fit.AddTiredness(1, MaxSkill)

	assert.InDelta(t, 1.0, fresh.Tiredness, 1e-6)
	assert.InDelta(t, 0.5, fit.Tiredness, 1e-6)
}

func TestMergeClampsTiredness(t *testing.T) {
	s := GameStats{Tiredness: 99}
	s.Merge(GameStats{Tiredness: 5, Steals: 1})
	assert.Equal(t, MaxTiredness, s.Tiredness)
	assert.Equal(t, 1, s.Steals)

	var rest GameStats
	rest.Rest(10)
	s = GameStats{Tiredness: 3}
	s.Merge(rest)
	assert.Zero(t, s.Tiredness)
}

func TestMergeLeavesPositionAlone(t *testing.T) {
	s := GameStats{Position: 3}
	s.Merge(GameStats{Position: 1, Points: 2})
	assert.Equal(t, 3, s.Position)
	assert.Equal(t, 2, s.Points)
}

func TestStatsMapAddAccumulates(t *testing.T) {
	id := uuid.New()
	m := StatsMap{}
	m.Add(id, GameStats{Steals: 1, Tiredness: 0.5})
	m.Add(id, GameStats{Steals: 1, Tiredness: 0.5})

	assert.Equal(t, 2, m[id].Steals)
	assert.InDelta(t, 1.0, m[id].Tiredness, 1e-6)
}

func TestNewLedgerPositions(t *testing.T) {
	home := newTestTeam("home", 10)
	home.InitialTiredness = map[PlayerID]float32{home.Lineup[2]: 30}
	l := NewLedger(home)

	for slot, id := range home.Lineup {
		s, ok := l.Get(id)
		require.True(t, ok)
		assert.Equal(t, slot, s.Position)
	}
	bench := 0
	for id := range home.Players {
		if home.Slot(id) == Bench {
			bench++
			assert.Equal(t, Bench, l[id].Position)
		}
	}
	assert.Equal(t, 2, bench)

	s, _ := l.Get(home.Lineup[2])
	assert.InDelta(t, 30, s.Tiredness, 1e-6)
	assert.InDelta(t, 30, s.InitialTiredness, 1e-6)
}

func TestLedgerApplyIsAtomic(t *testing.T) {
	home := newTestTeam("home", 10)
	l := NewLedger(home)
	known := home.Lineup[0]

	err := l.Apply(
		StatsMap{known: GameStats{Points: 2}},
		StatsMap{uuid.New(): GameStats{Steals: 1}},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingParticipant))
	assert.Zero(t, l[known].Points)

	require.NoError(t, l.Apply(StatsMap{known: GameStats{Points: 2}}, nil))
	assert.Equal(t, 2, l[known].Points)
}

func TestLedgerClone(t *testing.T) {
	home := newTestTeam("home", 10)
	l := NewLedger(home)
	c := l.Clone()
	c[home.Lineup[0]].Points = 10
	assert.Zero(t, l[home.Lineup[0]].Points)
}
