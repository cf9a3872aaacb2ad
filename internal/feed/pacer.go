package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/courtside/internal/engine"
)

var errFinished = errors.New("game finished")

// Pacer resolves one action per interval so spectators can follow a game
// in real time.
type Pacer struct {
	clock    quartz.Clock
	interval time.Duration
}

// NewPacer creates a pacer. A nil clock uses the real one.
func NewPacer(clock quartz.Clock, interval time.Duration) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{clock: clock, interval: interval}
}

// Play steps g on every tick until the final whistle, a failed action or
// ctx being done. A zero interval plays the game straight through.
func (p *Pacer) Play(ctx context.Context, g *engine.Game) error {
	if p.interval <= 0 {
		return g.Run(ctx)
	}

	w := p.clock.TickerFunc(ctx, p.interval, func() error {
		if _, err := g.Step(); err != nil {
			return fmt.Errorf("feed: step: %w", err)
		}
		if g.Finished() {
			return errFinished
		}
		return nil
	}, "feed", "pace")

	err := w.Wait()
	if errors.Is(err, errFinished) {
		return nil
	}
	return err
}
