package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digital.vasic.exercises/pkg/logging"
	"digital.vasic.exercises/pkg/registry"
)

// Server exposes live verification events over WebSocket plus
// a JSON statistics endpoint for authoring tooling.
type Server struct {
	mu        sync.Mutex
	collector *EventCollector
	registry  registry.Registry
	logger    logging.Logger
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]*sync.Mutex
}

// NewServer creates a monitoring server. The registry may be
// nil, in which case the stats endpoint reports collector
// statistics only.
func NewServer(
	addr string,
	collector *EventCollector,
	reg registry.Registry,
	logger logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Server{
		collector: collector,
		registry:  reg,
		logger:    logger,
		addr:      addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start begins serving until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.collector.OnEvent(func(event VerificationEvent) {
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	s.logger.Info("monitor server starting",
		logging.StringField("addr", s.addr))

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleEvents upgrades the connection to WebSocket and streams
// verification events until the client disconnects.
func (s *Server) handleEvents(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed",
			logging.ErrorField(err))
		return
	}

	s.mu.Lock()
	s.clients[conn] = &sync.Mutex{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// Drain the read side so close frames and pings are
	// processed; the stream is write-only otherwise.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast sends a message to all connected clients. A client
// that cannot be written to is dropped.
func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	conns := make(
		map[*websocket.Conn]*sync.Mutex, len(s.clients),
	)
	for conn, wmu := range s.clients {
		conns[conn] = wmu
	}
	s.mu.Unlock()

	for conn, wmu := range conns {
		wmu.Lock()
		conn.SetWriteDeadline(
			time.Now().Add(5 * time.Second),
		)
		err := conn.WriteMessage(
			websocket.TextMessage, data,
		)
		wmu.Unlock()

		if err != nil {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}
	}
}

// statsResponse is the JSON body served by the stats endpoint.
type statsResponse struct {
	Registry  *registry.Stats `json:"registry,omitempty"`
	Collector CollectorStats  `json:"collector"`
}

// handleStats serves registry and collector statistics so
// authoring tooling can confirm every exercise has a reachable
// verification module before publishing.
func (s *Server) handleStats(
	w http.ResponseWriter, _ *http.Request,
) {
	resp := statsResponse{
		Collector: s.collector.Stats(),
	}
	if s.registry != nil {
		stats := s.registry.Stats()
		resp.Registry = &stats
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to encode stats",
			logging.ErrorField(err))
	}
}

// ClientCount returns the number of connected WebSocket
// clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
