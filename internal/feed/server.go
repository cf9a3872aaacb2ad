// Package feed streams live play-by-play to websocket clients as msgpack
// frames and serves health and metrics endpoints next to it.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lox/courtside/internal/metrics"
	"github.com/rs/zerolog"
)

// Server is the HTTP side of the feed: /ws, /health and /metrics.
type Server struct {
	hub      *Hub
	metrics  *metrics.Manager
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a server publishing hub. metrics may be nil, in which
// case /metrics is not mounted.
func NewServer(hub *Hub, m *metrics.Manager, logger zerolog.Logger) *Server {
	return &Server{
		hub:     hub,
		metrics: m,
		logger:  logger.With().Str("component", "feed_server").Logger(),
		upgrader: websocket.Upgrader{
			// Spectators may watch from any origin.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Feed server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("feed: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := newClient(s.hub, conn)
	if !s.hub.join(client) {
		_ = conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
