package feed

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/event"
)

func testConfig() config.FeedConfig {
	cfg := config.Default().Feed
	cfg.SnapshotInterval = 20 * time.Millisecond
	return cfg
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

type frame struct {
	Type    string          `json:"type"`
	Session string          `json:"session"`
	Tick    uint64          `json:"tick"`
	Data    json.RawMessage `json:"data"`
}

func read(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub(testConfig(), "sess-1", nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, wsURL(srv.URL))
	b := dial(t, wsURL(srv.URL))
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.HandleEvent(event.GameEvent{
		Type: event.EventCollision,
		Tick: 42,
		Payload: &event.CollisionPayload{
			Outcome: event.OutcomeEnemyDestroyed,
			Score:   3,
		},
	})

	for _, conn := range []*websocket.Conn{a, b} {
		f := read(t, conn)
		assert.Equal(t, "collision", f.Type)
		assert.Equal(t, "sess-1", f.Session)
		assert.Equal(t, uint64(42), f.Tick)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(f.Data, &payload))
		assert.Equal(t, "enemy_destroyed", payload["outcome"])
		assert.EqualValues(t, 3, payload["score"])
	}
	assert.Equal(t, int64(2), hub.Sent())
}

func TestHubHandlesEveryEventType(t *testing.T) {
	hub := NewHub(testConfig(), "s", nil)
	assert.ElementsMatch(t, event.Types(), hub.EventTypes())
	assert.NotContains(t, hub.EventTypes(), event.EventTick)
}

func TestHubForgetsDisconnectedClients(t *testing.T) {
	hub := NewHub(testConfig(), "s", nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, wsURL(srv.URL))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHubDropsSlowClients(t *testing.T) {
	cfg := testConfig()
	cfg.SendBuffer = 1
	hub := NewHub(cfg, "s", nil)

	// Registered directly so nothing drains the buffer
	c := &client{id: "slow", send: make(chan []byte, cfg.SendBuffer)}
	hub.clients[c] = struct{}{}

	require.NoError(t, hub.Broadcast(Message{Type: "one"}))
	require.NoError(t, hub.Broadcast(Message{Type: "two"}))

	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, int64(1), hub.Dropped())
	_, open := <-c.send
	assert.True(t, open, "queued frame should still be readable")
	_, open = <-c.send
	assert.False(t, open, "send channel should be closed")
}

func TestHubSnapshots(t *testing.T) {
	hub := NewHub(testConfig(), "s", nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, wsURL(srv.URL))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- hub.RunSnapshots(ctx, func() (uint64, any) {
			return 7, map[string]int{"score": 5}
		})
	}()

	f := read(t, conn)
	assert.Equal(t, "snapshot", f.Type)
	assert.Equal(t, uint64(7), f.Tick)
	assert.JSONEq(t, `{"score":5}`, string(f.Data))

	cancel()
	require.NoError(t, <-done)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testConfig()
	hub := NewHub(cfg, "s", nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx, ln) }()

	conn := dial(t, "ws://"+ln.Addr().String()+cfg.Path)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 0, hub.ClientCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)

	assert.ErrorIs(t, hub.Serve(context.Background(), mustListen(t)), ErrHubClosed)
}

func mustListen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}
