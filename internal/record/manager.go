package record

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
)

const (
	defaultBaseDir       = "games"
	defaultFlushInterval = 10 * time.Second
	defaultFlushPlays    = 100
)

// Manager coordinates flushing for many monitors.
type Manager struct {
	cfg    ManagerConfig
	logger zerolog.Logger
	clock  quartz.Clock

	mu       sync.RWMutex
	monitors map[string]*Monitor
	flushReq chan struct{}
	cancel   context.CancelFunc
	ticker   quartz.Waiter
	wg       sync.WaitGroup
}

// NewManager creates and starts a record manager. A nil clock uses the real
// one.
func NewManager(logger zerolog.Logger, clock quartz.Clock, cfg ManagerConfig) *Manager {
	if cfg.BaseDir == "" {
		cfg.BaseDir = defaultBaseDir
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.FlushPlays <= 0 {
		cfg.FlushPlays = defaultFlushPlays
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		cfg:      cfg,
		logger:   logger.With().Str("component", "record_manager").Logger(),
		clock:    clock,
		monitors: make(map[string]*Monitor),
		flushReq: make(chan struct{}, 1),
		cancel:   cancel,
	}
	m.ticker = clock.TickerFunc(ctx, cfg.FlushInterval, func() error {
		m.flushAll()
		return nil
	}, "record", "flush")

	m.wg.Add(1)
	go m.run(ctx)
	return m
}

// Shutdown stops flushing in the background and writes every monitor one
// last time.
func (m *Manager) Shutdown() {
	m.cancel()
	_ = m.ticker.Wait()
	m.wg.Wait()

	m.mu.Lock()
	monitors := m.monitors
	m.monitors = make(map[string]*Monitor)
	m.mu.Unlock()
	for gameID, monitor := range monitors {
		if err := monitor.Close(); err != nil {
			m.logger.Error().Err(err).Str("game_id", gameID).Msg("record flush on shutdown failed")
		}
	}
}

// CreateMonitor registers a monitor for gameID writing game-<id>.toml under
// the base directory.
func (m *Manager) CreateMonitor(gameID string) (*Monitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.monitors[gameID]; exists {
		return nil, fmt.Errorf("record: monitor for %s already exists", gameID)
	}

	path := filepath.Join(m.cfg.BaseDir, fmt.Sprintf("game-%s.toml", gameID))
	monitor, err := NewMonitor(path, m.cfg.FlushPlays, m.clock, m.logger.With().Str("game_id", gameID).Logger())
	if err != nil {
		return nil, err
	}
	monitor.SetFlushNotifier(m.requestFlush)
	m.monitors[gameID] = monitor
	return monitor, nil
}

// RemoveMonitor flushes and unregisters the monitor for gameID.
func (m *Manager) RemoveMonitor(gameID string) {
	m.mu.Lock()
	monitor, ok := m.monitors[gameID]
	delete(m.monitors, gameID)
	m.mu.Unlock()

	if ok {
		if err := monitor.Close(); err != nil {
			m.logger.Error().Err(err).Str("game_id", gameID).Msg("record flush on remove failed")
		}
	}
}

// Len returns the number of registered monitors.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.monitors)
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-m.flushReq:
			m.flushAll()
		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) requestFlush() {
	select {
	case m.flushReq <- struct{}{}:
	default:
	}
}

func (m *Manager) flushAll() {
	m.mu.RLock()
	snapshot := make(map[string]*Monitor, len(m.monitors))
	for k, v := range m.monitors {
		snapshot[k] = v
	}
	m.mu.RUnlock()

	for gameID, monitor := range snapshot {
		err := monitor.Flush()
		if m.cfg.OnFlush != nil {
			m.cfg.OnFlush(err)
		}
		if err != nil {
			m.logger.Error().Err(err).Str("game_id", gameID).Msg("record flush failed")
		}
		if disabled, dropped := monitor.HandleFlushResult(err); disabled {
			m.logger.Error().Str("game_id", gameID).Int("dropped_plays", dropped).
				Msg("game recording disabled after repeated failures")
			m.RemoveMonitor(gameID)
		}
	}
}
