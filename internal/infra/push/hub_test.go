package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConn spins up a websocket server and returns the client side
// of a connection registered into the hub plus the server side conn.
func dialTestConn(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { client.Close() })

	// Registration happens in the server handler; wait for it.
	require.Eventually(t, func() bool {
		return hub.ConnectionCount(userID) == 1
	}, time.Second, 10*time.Millisecond)

	return client
}

func TestHub_SendDeliversToRegisteredConnection(t *testing.T) {
	hub := NewHub(slog.Default())
	userID := uuid.New()
	client := dialTestConn(t, hub, userID)

	err := hub.Send(context.Background(), userID, "notification", map[string]any{"title": "hello"})
	require.NoError(t, err)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "notification", msg.Event)
	assert.Equal(t, "hello", msg.Payload["title"])
}

func TestHub_SendWithoutConnectionsIsNotAnError(t *testing.T) {
	hub := NewHub(slog.Default())

	err := hub.Send(context.Background(), uuid.New(), "notification", nil)
	assert.NoError(t, err)
}

func TestHub_UnregisterRemovesConnection(t *testing.T) {
	hub := NewHub(slog.Default())
	userID := uuid.New()
	dialTestConn(t, hub, userID)

	require.Equal(t, 1, hub.ConnectionCount(userID))

	// Grab the registered server-side conn by sending through the hub
	// after unregistering every connection.
	hub.mu.RLock()
	var conn *websocket.Conn
	for c := range hub.conns[userID] {
		conn = c
	}
	hub.mu.RUnlock()

	hub.Unregister(userID, conn)
	assert.Equal(t, 0, hub.ConnectionCount(userID))
}
