// Package record writes games to TOML files as they are played. A Monitor
// observes one game; a Manager flushes every monitor on a clock.
package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/coder/quartz"
	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/fileutil"
	"github.com/lox/courtside/internal/wire"
	"github.com/rs/zerolog"
)

const maxConsecutiveFailures = 3

// Monitor records one game. It implements engine.Observer; everything it
// needs from the game is copied inside the callbacks so flushes can run on
// another goroutine.
type Monitor struct {
	path       string
	flushPlays int
	logger     zerolog.Logger
	clock      quartz.Clock

	mu                  sync.Mutex
	flushMu             sync.Mutex
	record              Record
	unwritten           int
	version             uint64
	flushed             uint64
	flushNotifier       func()
	consecutiveFailures int
	disabled            bool
}

// NewMonitor creates a monitor writing to path.
func NewMonitor(path string, flushPlays int, clock quartz.Clock, logger zerolog.Logger) (*Monitor, error) {
	if path == "" {
		return nil, errors.New("record: path is required")
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Monitor{
		path:       path,
		flushPlays: flushPlays,
		logger:     logger,
		clock:      clock,
	}, nil
}

// SetFlushNotifier registers a callback invoked when the monitor would like
// an asynchronous flush.
func (m *Monitor) SetFlushNotifier(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushNotifier = fn
}

// Path is the file the monitor writes.
func (m *Monitor) Path() string {
	return m.path
}

func (m *Monitor) OnAction(g *engine.Game, out engine.ActionOutput) {
	clock := g.Clock()
	play := Play{
		Clock:       clock.Format(out.EndAt),
		Tick:        uint32(out.EndAt),
		Situation:   out.Situation.String(),
		Possession:  g.Team(out.Possession).Name,
		Home:        out.HomeScore,
		Away:        out.AwayScore,
		Description: out.Description,
	}
	box := g.BoxScore()

	var notifier func()
	m.mu.Lock()
	if m.disabled {
		m.mu.Unlock()
		return
	}
	if m.record.GameID == "" {
		m.record.GameID = g.ID()
		m.record.Seed = g.Seed()
		m.record.Quarters = clock.Quarters
		m.record.QuarterLength = uint32(clock.QuarterLength)
	}
	m.record.Plays = append(m.record.Plays, play)
	m.record.Home = teamRecord(box.Home)
	m.record.Away = teamRecord(box.Away)
	m.unwritten++
	m.version++
	if m.flushPlays > 0 && m.unwritten >= m.flushPlays {
		notifier = m.flushNotifier
	}
	m.mu.Unlock()

	if notifier != nil {
		notifier()
	}
}

// OnGameComplete stamps the digest and flushes synchronously.
func (m *Monitor) OnGameComplete(g *engine.Game) {
	digest, err := wire.Digest(g.Log())
	if err != nil {
		m.logger.Error().Err(err).Msg("record digest failed")
	}

	m.mu.Lock()
	m.record.Finished = true
	if err == nil {
		m.record.Digest = digest
	}
	m.version++
	m.mu.Unlock()

	if err := m.Flush(); err != nil {
		m.logger.Error().Err(err).Str("path", m.path).Msg("record flush on completion failed")
	}
}

// Flush rewrites the record file if anything changed since the last write.
func (m *Monitor) Flush() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.mu.Lock()
	if m.disabled || m.version == m.flushed {
		m.mu.Unlock()
		return nil
	}
	snapshot := m.record
	snapshot.Plays = append([]Play(nil), m.record.Plays...)
	snapshot.WrittenAt = m.clock.Now().UTC()
	written := m.unwritten
	version := m.version
	m.mu.Unlock()

	err := fileutil.WriteAtomic(m.path, 0o644, func(w io.Writer) error {
		return Encode(w, &snapshot)
	})
	if err != nil {
		return fmt.Errorf("record: write %s: %w", m.path, err)
	}

	m.mu.Lock()
	m.unwritten -= written
	m.flushed = version
	m.mu.Unlock()
	return nil
}

// Close flushes remaining plays.
func (m *Monitor) Close() error {
	return m.Flush()
}

// HandleFlushResult tracks failures and disables the monitor after repeated
// ones, returning how many plays were dropped.
func (m *Monitor) HandleFlushResult(err error) (disabled bool, dropped int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		m.consecutiveFailures = 0
		return false, 0
	}
	m.consecutiveFailures++
	if m.consecutiveFailures < maxConsecutiveFailures {
		return false, 0
	}
	dropped = m.unwritten
	m.disabled = true
	m.record.Plays = nil
	return true, dropped
}

// IsDisabled reports whether the monitor gave up writing.
func (m *Monitor) IsDisabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disabled
}

func teamRecord(box engine.TeamBox) TeamRecord {
	tr := TeamRecord{
		ID:      box.ID.String(),
		Name:    box.Name,
		Score:   box.Score,
		Players: make([]PlayerRecord, len(box.Players)),
	}
	for i, line := range box.Players {
		s := line.Stats
		tr.Players[i] = PlayerRecord{
			ID:                 line.ID.String(),
			Name:               line.Name,
			Position:           s.Position,
			Points:             s.Points,
			TwoPointAttempts:   s.TwoPointAttempts,
			TwoPointMade:       s.TwoPointMade,
			ThreePointAttempts: s.ThreePointAttempts,
			ThreePointMade:     s.ThreePointMade,
			OffensiveRebounds:  s.OffensiveRebounds,
			DefensiveRebounds:  s.DefensiveRebounds,
			Assists:            s.Assists,
			Steals:             s.Steals,
			Blocks:             s.Blocks,
			Turnovers:          s.Turnovers,
			PlusMinus:          s.PlusMinus,
			Tiredness:          float64(s.Tiredness),
		}
	}
	return tr
}

// Encode writes r as TOML.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return errors.New("record: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// Load reads a record file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Record
	if _, err := toml.Decode(string(data), &r); err != nil {
		return nil, fmt.Errorf("record: decode %s: %w", path, err)
	}
	return &r, nil
}
