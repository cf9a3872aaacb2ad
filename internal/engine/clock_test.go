package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockPlusSaturates(t *testing.T) {
	c := DefaultClock()

	tests := []struct {
		name string
		at   Tick
		n    int
		want Tick
	}{
		{"inside quarter", 10, 5, 15},
		{"stops at quarter end", 595, 10, 600},
		{"boundary starts next quarter", 600, 10, 610},
		{"stops at final buzzer", 2395, 10, 2400},
		{"final buzzer is sticky", 2400, 5, 2400},
		{"zero is a no-op", 10, 0, 10},
		{"negative is a no-op", 10, -3, 10},
		{"huge does not wrap", 100, int(^uint32(0)), 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Plus(tt.at, tt.n))
		})
	}
}

func TestClockPeriodAndBuzzers(t *testing.T) {
	c := DefaultClock()

	assert.Equal(t, 1, c.Period(0))
	assert.Equal(t, 1, c.Period(599))
	assert.Equal(t, 2, c.Period(600))
	assert.Equal(t, 4, c.Period(2400))

	assert.False(t, c.AtQuarterEnd(0))
	assert.True(t, c.AtQuarterEnd(600))
	assert.False(t, c.AtQuarterEnd(601))
	assert.True(t, c.AtQuarterEnd(2400))

	assert.False(t, c.Expired(2399))
	assert.True(t, c.Expired(2400))
	assert.Equal(t, Tick(451), c.Remaining(749))
}

func TestClockFormat(t *testing.T) {
	c := DefaultClock()

	assert.Equal(t, "Q1 10:00", c.Format(0))
	assert.Equal(t, "Q1 00:00", c.Format(600))
	assert.Equal(t, "Q2 07:31", c.Format(749))
	assert.Equal(t, "Q4 00:00", c.Format(2400))
}

func TestClockValidate(t *testing.T) {
	require.NoError(t, DefaultClock().Validate())
	assert.Error(t, Clock{QuarterLength: 0, Quarters: 4}.Validate())
	assert.Error(t, Clock{QuarterLength: 600, Quarters: 0}.Validate())
}
