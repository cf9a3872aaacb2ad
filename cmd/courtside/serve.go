package main

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/courtside/cmd/courtside/shared"
	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/feed"
	"github.com/lox/courtside/internal/gameid"
	"github.com/lox/courtside/internal/metrics"
	"github.com/lox/courtside/internal/record"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ServeCmd streams paced games to websocket spectators.
type ServeCmd struct {
	MatchFlags `embed:""`

	Addr          string        `help:"Listen address" default:":8080" env:"COURTSIDE_ADDR"`
	Seed          *int64        `help:"Seed of the first game; game i uses seed+i (default: time based)" env:"COURTSIDE_SEED"`
	Games         int           `help:"Games to play, 0 for no limit" default:"0" env:"COURTSIDE_GAMES"`
	Pace          time.Duration `help:"Wall time per action" default:"500ms" env:"COURTSIDE_PACE"`
	Break         time.Duration `help:"Pause between games" default:"10s" env:"COURTSIDE_BREAK"`
	ExitWhenDone  bool          `help:"Stop serving once the last game has finished"`
	RecordDir     string        `help:"Write TOML game records into this directory" type:"path" env:"COURTSIDE_RECORD_DIR"`
	FlushInterval time.Duration `help:"Record flush interval" default:"10s"`
}

func (c *ServeCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	m, err := c.load()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return err
	}

	mets := metrics.NewManager()
	hub := feed.NewHub(logger, mets)
	srv := feed.NewServer(hub, mets, logger)

	var records *record.Manager
	if c.RecordDir != "" {
		records = record.NewManager(logger, quartz.NewReal(), record.ManagerConfig{
			BaseDir:       c.RecordDir,
			FlushInterval: c.FlushInterval,
			OnFlush:       mets.RecordFlush,
		})
		defer records.Shutdown()
	}

	group, ctx := errgroup.WithContext(ctx)
	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()

	group.Go(func() error {
		hub.Run(serveCtx)
		return nil
	})
	group.Go(func() error {
		return srv.Serve(serveCtx, ln)
	})
	group.Go(func() error {
		err := c.playGames(ctx, logger, m, hub, mets, records)
		if err == nil && c.ExitWhenDone {
			stopServing()
		}
		return err
	})

	err = group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *ServeCmd) playGames(ctx context.Context, logger zerolog.Logger, m match, hub *feed.Hub, mets *metrics.Manager, records *record.Manager) error {
	clock := quartz.NewReal()
	pacer := feed.NewPacer(clock, c.Pace)
	base := seedOrNow(c.Seed)

	for i := 0; c.Games == 0 || i < c.Games; i++ {
		seed := base + int64(i)
		id := gameid.FromSeed(seed)

		observers := []engine.Observer{hub, mets.Observer()}
		if records != nil {
			monitor, err := records.CreateMonitor(id)
			if err != nil {
				return err
			}
			observers = append(observers, monitor)
		}

		g, err := engine.NewGame(engine.Config{
			ID:        id,
			Seed:      seed,
			Home:      m.home,
			Away:      m.away,
			Clock:     m.clock,
			Tuning:    m.tuning,
			Logger:    logger,
			Observers: observers,
		})
		if err != nil {
			return err
		}

		logger.Info().Str("game_id", id).Int64("seed", seed).Msg("Tip-off")
		err = pacer.Play(ctx, g)
		if records != nil {
			records.RemoveMonitor(id)
		}
		if err != nil {
			mets.Abort(id)
			if !errors.Is(err, context.Canceled) {
				mets.RecordStepError()
			}
			return err
		}

		home, away := g.Score()
		logger.Info().Str("game_id", id).Int("home", home).Int("away", away).Msg("Final")

		if c.Games != 0 && i == c.Games-1 {
			break
		}
		pause := clock.NewTimer(c.Break, "serve", "break")
		select {
		case <-ctx.Done():
			pause.Stop()
			return ctx.Err()
		case <-pause.C:
		}
	}
	return nil
}
