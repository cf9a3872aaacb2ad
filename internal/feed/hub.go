package feed

import (
	"context"
	"sync"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/metrics"
	"github.com/lox/courtside/internal/wire"
	"github.com/rs/zerolog"
)

// Hub fans frames out to connected clients. It is an engine.Observer: every
// resolved action becomes a play frame and the final whistle a result frame.
// Frames of the game in progress are kept so late joiners catch up.
type Hub struct {
	logger  zerolog.Logger
	metrics *metrics.Manager

	register   chan *Client
	unregister chan *Client
	broadcast  chan frame
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*Client]bool
	backlog [][]byte
	gameID  string
}

// NewHub creates a hub. metrics may be nil.
func NewHub(logger zerolog.Logger, m *metrics.Manager) *Hub {
	return &Hub{
		logger:     logger.With().Str("component", "feed_hub").Logger(),
		metrics:    m,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan frame, 256),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

type frame struct {
	gameID string
	data   []byte
}

// Run handles client lifecycle and delivery until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			for _, data := range h.backlog {
				h.deliver(c, data)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.updateClients(total)
			h.logger.Info().Str("remote", c.remote).Int("total", total).Msg("Client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.updateClients(total)
			h.logger.Info().Str("remote", c.remote).Int("total", total).Msg("Client disconnected")

		case f := <-h.broadcast:
			h.mu.Lock()
			if f.gameID != h.gameID {
				h.gameID = f.gameID
				h.backlog = nil
			}
			h.backlog = append(h.backlog, f.data)
			for c := range h.clients {
				h.deliver(c, f.data)
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.updateClients(0)
			return
		}
	}
}

// deliver must be called with h.mu held. A client whose buffer is full
// misses the frame rather than stalling everyone else.
func (h *Hub) deliver(c *Client, data []byte) {
	select {
	case c.send <- data:
		if h.metrics != nil {
			h.metrics.RecordFeedFrame()
		}
	default:
		if h.metrics != nil {
			h.metrics.RecordFeedDropped()
		}
		h.logger.Warn().Str("remote", c.remote).Msg("Client send buffer full, dropping frame")
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues data for every client. Frames of a new gameID replace the
// backlog. Publishing after Run has returned is a no-op.
func (h *Hub) Publish(gameID string, data []byte) {
	select {
	case h.broadcast <- frame{gameID: gameID, data: data}:
	case <-h.done:
	}
}

func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) OnAction(g *engine.Game, out engine.ActionOutput) {
	play := wire.FromOutput(g.ID(), len(g.Log())-1, g.Clock(), out)
	data, err := wire.Marshal(&play)
	if err != nil {
		h.logger.Error().Err(err).Str("game_id", g.ID()).Msg("Failed to encode play")
		return
	}
	h.Publish(g.ID(), data)
}

func (h *Hub) OnGameComplete(g *engine.Game) {
	result, err := wire.FromGame(g)
	if err != nil {
		h.logger.Error().Err(err).Str("game_id", g.ID()).Msg("Failed to digest game")
		return
	}
	data, err := wire.Marshal(&result)
	if err != nil {
		h.logger.Error().Err(err).Str("game_id", g.ID()).Msg("Failed to encode result")
		return
	}
	h.Publish(g.ID(), data)
}

func (h *Hub) updateClients(n int) {
	if h.metrics != nil {
		h.metrics.UpdateFeedClients(n)
	}
}
