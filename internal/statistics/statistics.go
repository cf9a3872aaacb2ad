package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed              int64 // seed of the game (for replay)
	HomeScore         int
	AwayScore         int
	Actions           int // length of the play-by-play
	Turnovers         int
	ThreesMade        int
	OffensiveRebounds int
}

// Margin is the home score minus the away score.
func (r GameResult) Margin() int {
	return r.HomeScore - r.AwayScore
}

// Statistics aggregates many game results. The running sums describe the
// home margin, so a positive mean means the home side is stronger.
type Statistics struct {
	Games  int
	Sum    float64
	Sum2   float64   // sum of squares for variance
	Values []float64 // every margin, for median and percentiles

	HomeWins int
	AwayWins int
	Ties     int

	HomePoints        int
	AwayPoints        int
	Actions           int
	Turnovers         int
	ThreesMade        int
	OffensiveRebounds int

	// Blowouts are games decided by BlowoutMargin or more.
	Blowouts  int
	MaxMargin int
}

// BlowoutMargin is the winning margin at which a game counts as a blowout.
const BlowoutMargin = 20

// Add incorporates a game result.
func (s *Statistics) Add(r GameResult) {
	margin := r.Margin()
	m := float64(margin)
	s.Games++
	s.Sum += m
	s.Sum2 += m * m
	s.Values = append(s.Values, m)

	switch {
	case margin > 0:
		s.HomeWins++
	case margin < 0:
		s.AwayWins++
	default:
		s.Ties++
	}

	s.HomePoints += r.HomeScore
	s.AwayPoints += r.AwayScore
	s.Actions += r.Actions
	s.Turnovers += r.Turnovers
	s.ThreesMade += r.ThreesMade
	s.OffensiveRebounds += r.OffensiveRebounds

	abs := margin
	if abs < 0 {
		abs = -abs
	}
	if abs >= BlowoutMargin {
		s.Blowouts++
	}
	if abs > s.MaxMargin {
		s.MaxMargin = abs
	}
}

// Mean returns the average home margin.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of the margin.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the margin.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean margin.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// margin.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// HomeWinRate returns the share of games the home side won.
func (s *Statistics) HomeWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.HomeWins) / float64(s.Games)
}

// PointsPerGame returns the average score of each side.
func (s *Statistics) PointsPerGame() (home, away float64) {
	if s.Games == 0 {
		return 0, 0
	}
	return float64(s.HomePoints) / float64(s.Games), float64(s.AwayPoints) / float64(s.Games)
}

// PerGame divides a running total by the number of games.
func (s *Statistics) PerGame(total int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(total) / float64(s.Games)
}

// Median returns the median margin.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the margin at percentile p in [0, 1], interpolating
// between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the aggregates agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}
	if s.HomeWins+s.AwayWins+s.Ties != s.Games {
		return fmt.Errorf("results (%d home, %d away, %d tied) do not add up to %d games",
			s.HomeWins, s.AwayWins, s.Ties, s.Games)
	}
	if diff := float64(s.HomePoints-s.AwayPoints) - s.Sum; math.Abs(diff) > 1e-6 {
		return fmt.Errorf("margin sum %.0f does not match points %d-%d", s.Sum, s.HomePoints, s.AwayPoints)
	}
	return nil
}
