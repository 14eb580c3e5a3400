// Package push implements the process-local socket hub. Each instance
// tracks its own connections; cross-instance delivery goes through the
// pub/sub backplane and the push worker.
package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"verifiedtutors/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const writeWait = 10 * time.Second

// envelope is the wire format written to socket clients.
type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// Hub is a registry of open websocket connections keyed by user ID.
// A user may hold several connections (multiple tabs or devices).
type Hub struct {
	mu     sync.RWMutex
	conns  map[uuid.UUID]map[*websocket.Conn]struct{}
	logger *slog.Logger
}

// NewHub builds an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns:  make(map[uuid.UUID]map[*websocket.Conn]struct{}),
		logger: logger,
	}
}

// NewPushHub exposes the hub as the domain service interface.
func NewPushHub(hub *Hub) service.PushHub {
	return hub
}

// Register adds a connection to the user's set.
func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[userID]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		h.conns[userID] = set
	}
	set[conn] = struct{}{}

	h.logger.Debug("Socket registered", slog.Any("userID", userID), slog.Int("connections", len(set)))
}

// Unregister removes a connection and closes it.
func (h *Hub) Unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropLocked(userID, conn)
}

// Send writes the event to every connection the user has on this
// instance. Write failures drop the stale connection; a user with no
// connections is not an error.
func (h *Hub) Send(ctx context.Context, userID uuid.UUID, event string, payload any) error {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return errors.Wrap(err, "failed to marshal push payload")
	}

	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("Dropping stale socket", slog.Any("userID", userID), slog.Any("error", err))
			h.mu.Lock()
			h.dropLocked(userID, conn)
			h.mu.Unlock()
		}
	}

	return nil
}

// ConnectionCount reports how many connections the user holds here.
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns[userID])
}

// dropLocked removes and closes one connection. Caller holds the lock.
func (h *Hub) dropLocked(userID uuid.UUID, conn *websocket.Conn) {
	set, ok := h.conns[userID]
	if !ok {
		return
	}
	if _, ok := set[conn]; !ok {
		return
	}

	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, userID)
	}
	_ = conn.Close()
}
