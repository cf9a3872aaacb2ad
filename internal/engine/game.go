package engine

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
	"github.com/rs/zerolog"
)

// Observer is notified after every applied action and once the final
// whistle has been handled. Callbacks run on the goroutine driving the game
// and must not call Step.
type Observer interface {
	OnAction(g *Game, out ActionOutput)
	OnGameComplete(g *Game)
}

// Config describes one game. Zero values for Clock and Tuning select the
// defaults; a nil Router selects DefaultRouter.
type Config struct {
	ID        string
	Seed      int64
	Home      *TeamInGame
	Away      *TeamInGame
	Clock     Clock
	Tuning    *Tuning
	Router    *Router
	Logger    zerolog.Logger
	Observers []Observer
}

// Game is a single session. It owns the ledger, the log and the random
// stream, and is driven synchronously by Step or Run.
type Game struct {
	id        string
	seed      int64
	home      *TeamInGame
	away      *TeamInGame
	clock     Clock
	tuning    Tuning
	router    *Router
	src       *rand.PCG
	rng       *rand.Rand
	ledger    Ledger
	log       []ActionOutput
	latest    ActionOutput
	opening   Possession
	tippedOff bool
	finished  bool
	logger    zerolog.Logger
	observers []Observer
}

// NewGame validates the rosters and prepares a game at tip-off.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Home == nil || cfg.Away == nil {
		return nil, errors.New("game: both teams are required")
	}
	if err := checkTeams(cfg.Home, cfg.Away); err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == (Clock{}) {
		clock = DefaultClock()
	}
	if err := clock.Validate(); err != nil {
		return nil, err
	}
	tuning := DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	router := cfg.Router
	if router == nil {
		router = DefaultRouter()
	}

	src := randutil.NewSource(cfg.Seed)
	return &Game{
		id:     cfg.ID,
		seed:   cfg.Seed,
		home:   cfg.Home,
		away:   cfg.Away,
		clock:  clock,
		tuning: tuning,
		router: router,
		src:    src,
		rng:    rand.New(src),
		ledger: NewLedger(cfg.Home, cfg.Away),
		latest: ActionOutput{Possession: Home, Situation: JumpBall},
		logger: cfg.Logger.With().
			Str("component", "game").
			Str("game_id", cfg.ID).
			Int64("seed", cfg.Seed).
			Logger(),
		observers: cfg.Observers,
	}, nil
}

func checkTeams(home, away *TeamInGame) error {
	if _, err := home.OnCourt(); err != nil {
		return fmt.Errorf("game: home: %w", err)
	}
	if _, err := away.OnCourt(); err != nil {
		return fmt.Errorf("game: away: %w", err)
	}
	for _, team := range []*TeamInGame{home, away} {
		seen := make(map[PlayerID]bool, LineupSize)
		for _, id := range team.Lineup {
			if seen[id] {
				return fmt.Errorf("game: %s lists %s twice in the lineup", team.Name, id)
			}
			seen[id] = true
		}
	}
	for id := range home.Players {
		if _, ok := away.Players[id]; ok {
			return fmt.Errorf("game: player %s is on both rosters", id)
		}
	}
	return nil
}

// AddObserver registers o for subsequent actions.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// Step resolves one action. On error the game is left exactly as it was,
// random stream included, and the error is returned.
func (g *Game) Step() (ActionOutput, error) {
	if g.finished {
		return ActionOutput{}, ErrGameOver
	}

	input := g.latest
	situation := input.Situation
	if situation.interruptible() && g.clock.AtQuarterEnd(input.EndAt) {
		situation = EndOfQuarter
	}
	action, ok := g.router.Route(situation)
	if !ok {
		return ActionOutput{}, &ConfigurationError{Missing: []Situation{situation}}
	}

	state, err := g.src.MarshalBinary()
	if err != nil {
		return ActionOutput{}, fmt.Errorf("game: snapshot random stream: %w", err)
	}
	out, err := g.apply(action, situation, input)
	if err != nil {
		if rerr := g.src.UnmarshalBinary(state); rerr != nil {
			return ActionOutput{}, errors.Join(err, rerr)
		}
		g.logger.Debug().Err(err).Str("situation", situation.String()).Msg("Action rejected")
		return ActionOutput{}, err
	}

	g.logger.Debug().
		Str("situation", situation.String()).
		Str("next", out.Situation.String()).
		Str("possession", out.Possession.String()).
		Str("clock", g.clock.Format(out.EndAt)).
		Int("home", out.HomeScore).
		Int("away", out.AwayScore).
		Msg(out.Description)

	for _, o := range g.observers {
		o.OnAction(g, out)
	}
	if g.finished {
		g.logger.Debug().Int("home", out.HomeScore).Int("away", out.AwayScore).Int("actions", len(g.log)).Msg("Game complete")
		for _, o := range g.observers {
			o.OnGameComplete(g)
		}
	}
	return out, nil
}

// apply executes action and commits its output only if every check passes.
func (g *Game) apply(action Action, situation Situation, input ActionOutput) (ActionOutput, error) {
	out, err := action.Execute(input, g, g.rng)
	if err != nil {
		return ActionOutput{}, fmt.Errorf("%s: %w", situation, err)
	}
	if err := g.validate(input, out); err != nil {
		return ActionOutput{}, fmt.Errorf("%s: %w", situation, err)
	}
	if err := g.ledger.Apply(out.AttackStats, out.DefenseStats); err != nil {
		return ActionOutput{}, fmt.Errorf("%s: %w", situation, err)
	}

	if situation == JumpBall && !g.tippedOff {
		g.opening = out.Possession
		g.tippedOff = true
	}
	if situation.Terminal() {
		g.finished = true
	}
	g.log = append(g.log, out)
	g.latest = out
	return out, nil
}

func (g *Game) validate(input, out ActionOutput) error {
	switch {
	case !out.Situation.Valid():
		return fmt.Errorf("%w: unknown situation %d", ErrInconsistentOutput, out.Situation)
	case out.StartAt < input.EndAt:
		return fmt.Errorf("%w: starts at %d before previous end %d", ErrInconsistentOutput, out.StartAt, input.EndAt)
	case out.EndAt < out.StartAt:
		return fmt.Errorf("%w: ends at %d before it starts at %d", ErrInconsistentOutput, out.EndAt, out.StartAt)
	case out.EndAt > g.clock.End():
		return fmt.Errorf("%w: ends at %d past the final buzzer %d", ErrInconsistentOutput, out.EndAt, g.clock.End())
	case out.HomeScore < input.HomeScore || out.AwayScore < input.AwayScore:
		return fmt.Errorf("%w: score went from %d-%d to %d-%d", ErrInconsistentOutput,
			input.HomeScore, input.AwayScore, out.HomeScore, out.AwayScore)
	case out.HomeScore > input.HomeScore && out.AwayScore > input.AwayScore:
		return fmt.Errorf("%w: both sides scored", ErrInconsistentOutput)
	case out.Situation == Turnover && out.Possession == input.Possession:
		return fmt.Errorf("%w: turnover kept possession with %s", ErrInconsistentOutput, input.Possession)
	}
	return nil
}

// Run steps until the final whistle or until ctx is done.
func (g *Game) Run(ctx context.Context) error {
	for !g.finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Court implementation.

func (g *Game) Team(p Possession) *TeamInGame {
	if p == Home {
		return g.home
	}
	return g.away
}

func (g *Game) Stats(id PlayerID) (GameStats, bool) {
	return g.ledger.Get(id)
}

func (g *Game) Clock() Clock {
	return g.clock
}

func (g *Game) Tuning() Tuning {
	return g.tuning
}

func (g *Game) OpeningPossession() Possession {
	return g.opening
}

// ID returns the identifier the game was configured with.
func (g *Game) ID() string {
	return g.id
}

func (g *Game) Seed() int64 {
	return g.seed
}

// Finished reports whether the final whistle has been handled.
func (g *Game) Finished() bool {
	return g.finished
}

// Latest returns the most recent output, or the tip-off placeholder before
// the first step.
func (g *Game) Latest() ActionOutput {
	return g.latest
}

// Log returns a copy of every applied output in order.
func (g *Game) Log() []ActionOutput {
	out := make([]ActionOutput, len(g.log))
	copy(out, g.log)
	return out
}

// Ledger returns a deep copy of the stat ledger.
func (g *Game) Ledger() Ledger { return g.ledger.Clone() }

// Score returns the current home and away points.
func (g *Game) Score() (home, away int) {
	return g.latest.HomeScore, g.latest.AwayScore
}

// Winner returns the side ahead on points. ok is false for a tie or an
// unfinished game.
func (g *Game) Winner() (p Possession, ok bool) {
	if !g.finished {
		return Home, false
	}
	home, away := g.Score()
	switch {
	case home > away:
		return Home, true
	case away > home:
		return Away, true
	default:
		return Home, false
	}
}
