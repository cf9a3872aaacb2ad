package metrics

import (
	"net/http"
	"sync"

	"github.com/lox/courtside/internal/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the game and feed metrics. Each Manager registers on its own
// registry so tests and parallel simulations never collide.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	gamesStarted   prometheus.Counter
	gamesCompleted *prometheus.CounterVec
	gamesActive    prometheus.Gauge
	actions        *prometheus.CounterVec
	points         *prometheus.CounterVec
	stepErrors     prometheus.Counter
	margin         prometheus.Histogram
	actionsPerGame prometheus.Histogram

	feedClients   prometheus.Gauge
	feedFrames    prometheus.Counter
	feedDropped   prometheus.Counter
	recordFlushes *prometheus.CounterVec

	mu      sync.Mutex
	started map[string]bool
}

// NewManager creates a metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "courtside",
		subsystem:        "engine",
		histogramBuckets: []float64{50, 100, 150, 200, 250, 300, 400},
		started:          make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.gamesStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_started_total",
		Help:      "Games that resolved at least one action",
	})
	m.gamesCompleted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_completed_total",
		Help:      "Games that finished, by result (home_win, away_win, tie or aborted)",
	}, []string{"result"})
	m.gamesActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_active",
		Help:      "Games started but not yet finished",
	})
	m.actions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "actions_total",
		Help:      "Resolved actions by the situation they produced",
	}, []string{"situation"})
	m.points = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_total",
		Help:      "Points scored in completed games by side",
	}, []string{"side"})
	m.stepErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "step_errors_total",
		Help:      "Actions that failed and left the game untouched",
	})
	m.margin = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_margin_points",
		Help:      "Absolute final score difference of completed games",
		Buckets:   []float64{0, 2, 5, 10, 15, 20, 30},
	})
	m.actionsPerGame = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "actions_per_game",
		Help:      "Length of the play-by-play of completed games",
		Buckets:   m.histogramBuckets,
	})

	m.feedClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "feed",
		Name:      "clients",
		Help:      "Connected feed clients",
	})
	m.feedFrames = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "feed",
		Name:      "frames_sent_total",
		Help:      "Frames queued to feed clients",
	})
	m.feedDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "feed",
		Name:      "frames_dropped_total",
		Help:      "Frames dropped because a client fell behind",
	})
	m.recordFlushes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "record",
		Name:      "flushes_total",
		Help:      "Game record flushes by outcome",
	}, []string{"outcome"})
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordStepError counts an action that failed.
func (m *Manager) RecordStepError() {
	m.stepErrors.Inc()
}

// Abort retires a game that stopped before its final whistle, so it no
// longer counts as active. It is a no-op for unknown or completed games.
func (m *Manager) Abort(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started[gameID] {
		return
	}
	delete(m.started, gameID)
	m.gamesActive.Dec()
	m.gamesCompleted.WithLabelValues("aborted").Inc()
}

// UpdateFeedClients sets the number of connected feed clients.
func (m *Manager) UpdateFeedClients(n int) {
	m.feedClients.Set(float64(n))
}

// RecordFeedFrame counts a frame queued to one client.
func (m *Manager) RecordFeedFrame() {
	m.feedFrames.Inc()
}

// RecordFeedDropped counts a frame a slow client never received.
func (m *Manager) RecordFeedDropped() {
	m.feedDropped.Inc()
}

// RecordFlush counts a record flush; err nil means success.
func (m *Manager) RecordFlush(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.recordFlushes.WithLabelValues(outcome).Inc()
}

// Observer returns an engine observer feeding the game metrics. One
// observer may be shared by any number of games.
func (m *Manager) Observer() engine.Observer {
	return gameObserver{m}
}

type gameObserver struct {
	m *Manager
}

func (o gameObserver) OnAction(g *engine.Game, out engine.ActionOutput) {
	m := o.m
	m.mu.Lock()
	if !m.started[g.ID()] {
		m.started[g.ID()] = true
		m.gamesStarted.Inc()
		m.gamesActive.Inc()
	}
	m.mu.Unlock()
	m.actions.WithLabelValues(out.Situation.String()).Inc()
}

func (o gameObserver) OnGameComplete(g *engine.Game) {
	m := o.m
	m.mu.Lock()
	if m.started[g.ID()] {
		delete(m.started, g.ID())
		m.gamesActive.Dec()
	}
	m.mu.Unlock()

	home, away := g.Score()
	m.points.WithLabelValues(engine.Home.String()).Add(float64(home))
	m.points.WithLabelValues(engine.Away.String()).Add(float64(away))

	result := "tie"
	if winner, ok := g.Winner(); ok {
		result = winner.String() + "_win"
	}
	m.gamesCompleted.WithLabelValues(result).Inc()

	diff := home - away
	if diff < 0 {
		diff = -diff
	}
	m.margin.Observe(float64(diff))
	m.actionsPerGame.Observe(float64(len(g.Log())))
}
