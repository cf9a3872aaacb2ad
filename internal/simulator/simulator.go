package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/gameid"
	"github.com/lox/courtside/internal/statistics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for a batch of games between two teams.
type Config struct {
	Games   int
	Seed    int64 // game i plays with Seed+i
	Workers int   // zero means GOMAXPROCS
	Timeout time.Duration

	Home   *engine.TeamInGame
	Away   *engine.TeamInGame
	Clock  engine.Clock
	Tuning *engine.Tuning

	Logger zerolog.Logger
	// Observers are attached to every game and must be safe for concurrent
	// use.
	Observers []engine.Observer
}

// Simulator plays seeded games in parallel.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays every game and aggregates the results in seed order, so the
// statistics do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", s.config.Games)
	}

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			r, err := s.playGame(ctx, seed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (s *Simulator) playGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	game, err := engine.NewGame(engine.Config{
		ID:        gameid.FromSeed(seed),
		Seed:      seed,
		Home:      s.config.Home,
		Away:      s.config.Away,
		Clock:     s.config.Clock,
		Tuning:    s.config.Tuning,
		Logger:    s.config.Logger,
		Observers: s.config.Observers,
	})
	if err != nil {
		return statistics.GameResult{}, err
	}
	if err := game.Run(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return statistics.GameResult{}, fmt.Errorf("timed out after %v: %w", s.config.Timeout, err)
		}
		return statistics.GameResult{}, err
	}
	return Summarize(game), nil
}

// Summarize turns a finished game into a GameResult.
func Summarize(g *engine.Game) statistics.GameResult {
	home, away := g.Score()
	r := statistics.GameResult{
		Seed:      g.Seed(),
		HomeScore: home,
		AwayScore: away,
		Actions:   len(g.Log()),
	}
	box := g.BoxScore()
	for _, team := range []engine.TeamBox{box.Home, box.Away} {
		r.Turnovers += team.Totals.Turnovers
		r.ThreesMade += team.Totals.ThreePointMade
		r.OffensiveRebounds += team.Totals.OffensiveRebounds
	}
	return r
}

// PrintSummary writes a human readable report of a batch.
func PrintSummary(w io.Writer, stats *statistics.Statistics, home, away string) {
	low, high := stats.ConfidenceInterval95()
	homePPG, awayPPG := stats.PointsPerGame()

	fmt.Fprintf(w, "\n=== %s (home) vs %s (away) ===\n", home, away)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Record: %d-%d (%d tied), home win rate %.1f%%\n",
		stats.HomeWins, stats.AwayWins, stats.Ties, stats.HomeWinRate()*100)
	fmt.Fprintf(w, "Points per game: %.1f - %.1f\n", homePPG, awayPPG)

	fmt.Fprintf(w, "\n=== HOME MARGIN ===\n")
	fmt.Fprintf(w, "Mean: %+.2f\n", stats.Mean())
	fmt.Fprintf(w, "Median: %+.2f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%+.2f, %+.2f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%+.1f, P25=%+.1f, P75=%+.1f, P95=%+.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Blowouts (>=%d): %d, widest margin %d\n", statistics.BlowoutMargin, stats.Blowouts, stats.MaxMargin)

	fmt.Fprintf(w, "\n=== PER GAME ===\n")
	fmt.Fprintf(w, "Actions: %.1f\n", stats.PerGame(stats.Actions))
	fmt.Fprintf(w, "Turnovers: %.1f\n", stats.PerGame(stats.Turnovers))
	fmt.Fprintf(w, "Threes made: %.1f\n", stats.PerGame(stats.ThreesMade))
	fmt.Fprintf(w, "Offensive rebounds: %.1f\n", stats.PerGame(stats.OffensiveRebounds))
}
