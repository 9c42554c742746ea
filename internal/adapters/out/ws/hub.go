// Package ws fans service order lifecycle events out to connected dashboards
// over WebSocket. Delivery is best effort: the owning business transaction
// has already committed by the time Publish runs, so failures are logged and
// dropped rather than surfaced to the caller.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"autoshop/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// eventFrame is the JSON payload sent to dashboards.
type eventFrame struct {
	Name       string         `json:"name"`
	OrderID    string         `json:"orderId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data,omitempty"`
}

// client wraps a WebSocket connection with a mutex for thread-safe writes.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub maintains connected dashboard clients and broadcasts lifecycle events.
// Implements ports.EventPublisher.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates a hub with no connected clients.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Publish broadcasts one lifecycle event to every connected dashboard.
// Slow or dead connections are dropped; Publish never fails the business
// operation that produced the event.
func (h *Hub) Publish(_ context.Context, event ports.Event) {
	data, err := json.Marshal(eventFrame{
		Name:       event.Name,
		OrderID:    event.OrderID.String(),
		OccurredAt: event.OccurredAt,
		Data:       event.Data,
	})
	if err != nil {
		h.log.Error("ws: marshal event", "event", event.Name, "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		writeErr := c.conn.WriteMessage(websocket.TextMessage, data)
		c.mu.Unlock()

		if writeErr != nil {
			h.log.Warn("ws: dropping client", "error", writeErr)
			h.unregister(c)
		}
	}
}

// Handle upgrades an HTTP request to a WebSocket connection and keeps it
// alive with pings until the client goes away.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws: upgrade", "error", err)
		return
	}

	c := &client{conn: conn}
	h.register(c)
	h.log.Info("ws: client connected", "total", h.clientCount())

	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	go h.ping(c)

	for {
		if _, _, readErr := conn.ReadMessage(); readErr != nil {
			break
		}
	}
	h.unregister(c)
	h.log.Info("ws: client disconnected", "total", h.clientCount())
}

func (h *Hub) ping(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
		c.mu.Unlock()
		if err != nil {
			return
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if present {
		_ = c.conn.Close()
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
