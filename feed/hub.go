// Package feed streams gameplay events and periodic snapshots to websocket spectators
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/event"
)

// ErrHubClosed is returned when serving on a closed hub
var ErrHubClosed = errors.New("feed: hub closed")

// Message is one JSON frame sent to spectators
type Message struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Tick    uint64 `json:"tick"`
	Data    any    `json:"data,omitempty"`
}

// client is one connected spectator
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans messages out to every connected spectator
// A spectator whose buffer is full is disconnected rather than slowing the game
type Hub struct {
	cfg     config.FeedConfig
	session string
	logger  *zap.Logger

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	sent    atomic.Int64
	dropped atomic.Int64
}

// NewHub creates a hub labelling every message with sessionID
func NewHub(cfg config.FeedConfig, sessionID string, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		cfg:     cfg,
		session: sessionID,
		logger:  logger.Named("feed"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the spectator
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, h.cfg.SendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("spectator connected", zap.String("client", c.id), zap.String("remote", conn.RemoteAddr().String()))

	go h.writePump(c)
	go h.readPump(c)
}

// writePump owns all writes to the connection
func (h *Hub) writePump(c *client) {
	defer func() { _ = c.conn.Close() }()

	for data := range c.send {
		if h.cfg.WriteTimeout > 0 {
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("write failed", zap.String("client", c.id), zap.Error(err))
			h.remove(c)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

// readPump discards inbound frames and detects disconnects
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		c.close()
		h.logger.Info("spectator disconnected", zap.String("client", c.id))
	}
}

// Broadcast encodes msg once and queues it for every spectator
func (h *Hub) Broadcast(msg Message) error {
	msg.Session = h.session
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("feed: encode %s: %w", msg.Type, err)
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
			h.sent.Add(1)
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.dropped.Add(1)
		h.logger.Warn("dropping slow spectator", zap.String("client", c.id))
		h.remove(c)
	}
	return nil
}

func (h *Hub) EventTypes() []event.EventType {
	return event.Types()
}

// HandleEvent forwards a game event; it runs on the ticking goroutine and never blocks
func (h *Hub) HandleEvent(ev event.GameEvent) {
	err := h.Broadcast(Message{Type: ev.Type.String(), Tick: ev.Tick, Data: ev.Payload})
	if err != nil {
		h.logger.Error("broadcast failed", zap.Error(err))
	}
}

// RunSnapshots broadcasts snapshot() every interval until ctx is done
func (h *Hub) RunSnapshots(ctx context.Context, snapshot func() (uint64, any)) error {
	if h.cfg.SnapshotInterval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(h.cfg.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if h.ClientCount() == 0 {
				continue
			}
			tick, data := snapshot()
			if err := h.Broadcast(Message{Type: "snapshot", Tick: tick, Data: data}); err != nil {
				return err
			}
		}
	}
}

// ListenAndServe serves the hub on the configured address and path until ctx is done
func (h *Hub) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.cfg.Addr)
	if err != nil {
		return fmt.Errorf("feed: listen %s: %w", h.cfg.Addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve serves the hub on ln until ctx is done, then closes every spectator
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		_ = ln.Close()
		return ErrHubClosed
	}

	mux := http.NewServeMux()
	mux.Handle(h.cfg.Path, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	h.logger.Info("feed listening", zap.String("addr", ln.Addr().String()), zap.String("path", h.cfg.Path))

	select {
	case err := <-errCh:
		h.Close()
		return fmt.Errorf("feed: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	h.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("feed: shutdown: %w", err)
	}
	return nil
}

// Close disconnects every spectator and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	list := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		list = append(list, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, c := range list {
		c.close()
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Sent returns the number of frames queued to spectators
func (h *Hub) Sent() int64 { return h.sent.Load() }

// Dropped returns the number of spectators dropped for falling behind
func (h *Hub) Dropped() int64 { return h.dropped.Load() }
