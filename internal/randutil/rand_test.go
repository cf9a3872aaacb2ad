package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSourceSnapshotRestores(t *testing.T) {
	src := NewSource(9)
	state, err := src.MarshalBinary()
	require.NoError(t, err)

	first := src.Uint64()
	src.Uint64()
	require.NoError(t, src.UnmarshalBinary(state))
	assert.Equal(t, first, src.Uint64())
}

func TestWeighted(t *testing.T) {
	rng := New(3)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		idx, err := Weighted(rng, []int{1, 0, 2})
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Zero(t, counts[1])
	assert.Greater(t, counts[2], counts[0])

	_, err := Weighted(rng, []int{0, -1})
	assert.ErrorIs(t, err, ErrNoWeight)
	_, err = Weighted(rng, nil)
	assert.ErrorIs(t, err, ErrNoWeight)
}

func TestBetween(t *testing.T) {
	rng := New(4)
	for i := 0; i < 500; i++ {
		v := Between(rng, 3, 8)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 8)
	}
	assert.Equal(t, 5, Between(rng, 5, 5))
	assert.Equal(t, 5, Between(rng, 5, 2))
}

func TestCoinFlipIsFair(t *testing.T) {
	rng := New(5)
	heads := 0
	for i := 0; i < 2000; i++ {
		if CoinFlip(rng) {
			heads++
		}
	}
	assert.InDelta(t, 1000, heads, 150)
}
