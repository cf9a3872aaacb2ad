package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.9))
	assert.Zero(t, stats.HomeWinRate())
	assert.Error(t, stats.Validate())
}

func TestStatisticsSingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 7, HomeScore: 101, AwayScore: 96, Actions: 410, Turnovers: 22, ThreesMade: 18})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 5.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 5.0, stats.Median())
	assert.Equal(t, 1, stats.HomeWins)
	assert.Equal(t, 1.0, stats.HomeWinRate())
	assert.Equal(t, 410.0, stats.PerGame(stats.Actions))
	require.NoError(t, stats.Validate())
}

func TestStatisticsMultipleGames(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []GameResult{
		{HomeScore: 100, AwayScore: 90}, // +10
		{HomeScore: 88, AwayScore: 94},  // -6
		{HomeScore: 97, AwayScore: 97},  // 0
		{HomeScore: 120, AwayScore: 95}, // +25
	} {
		stats.Add(r)
	}

	assert.Equal(t, 4, stats.Games)
	assert.Equal(t, 2, stats.HomeWins)
	assert.Equal(t, 1, stats.AwayWins)
	assert.Equal(t, 1, stats.Ties)
	assert.InDelta(t, 7.25, stats.Mean(), 1e-9)

	// Margins 10, -6, 0, 25: mean 7.25, sum of squared deviations 550.75.
	assert.InDelta(t, 550.75/3, stats.Variance(), 1e-9)
	assert.InDelta(t, 5.0, stats.Median(), 1e-9)
	assert.Equal(t, -6.0, stats.Percentile(0))
	assert.Equal(t, 25.0, stats.Percentile(1))

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())

	home, away := stats.PointsPerGame()
	assert.InDelta(t, 101.25, home, 1e-9)
	assert.InDelta(t, 94.0, away, 1e-9)

	assert.Equal(t, 1, stats.Blowouts)
	assert.Equal(t, 25, stats.MaxMargin)
	require.NoError(t, stats.Validate())
}

func TestStatisticsValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{HomeScore: 80, AwayScore: 70})
	stats.HomeWins++
	assert.Error(t, stats.Validate())

	stats = &Statistics{}
	stats.Add(GameResult{HomeScore: 80, AwayScore: 70})
	stats.Values = nil
	assert.Error(t, stats.Validate())

	stats = &Statistics{}
	stats.Add(GameResult{HomeScore: 80, AwayScore: 70})
	stats.HomePoints += 3
	assert.Error(t, stats.Validate())
}
