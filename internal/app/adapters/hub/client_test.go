package hub

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statushub/internal/app/domain/status"
)

// startHub serves the hub over a test HTTP server and returns its ws:// URL.
func startHub(t *testing.T) (string, *Hub) {
	t.Helper()

	h := newHub()
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	srv := httptest.NewServer(h)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return "ws" + strings.TrimPrefix(srv.URL, "http"), h
}

func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	return env
}

func waitMembers(t *testing.T, h *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Members() == want },
		2*time.Second, 10*time.Millisecond)
}

func TestWebsocket_BroadcastReachesConnectedClients(t *testing.T) {
	wsURL, h := startHub(t)

	first := dial(t, wsURL)
	second := dial(t, wsURL)
	waitMembers(t, h, 2)

	h.Notify(status.EventAdded, map[string]any{"id": 1})

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		assert.Equal(t, status.EventAdded, env.Event)
	}
}

func TestWebsocket_LeaveStopsDeliveries(t *testing.T) {
	wsURL, h := startHub(t)

	stay := dial(t, wsURL)
	leaver := dial(t, wsURL)
	waitMembers(t, h, 2)

	require.NoError(t, leaver.WriteJSON(map[string]string{"action": "leave"}))
	waitMembers(t, h, 1)

	h.Notify(status.EventDeleted, 5)

	env := readEnvelope(t, stay)
	assert.Equal(t, status.EventDeleted, env.Event)

	leaver.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := leaver.ReadMessage()
	assert.Error(t, err, "a left client must not receive broadcasts")
}

func TestWebsocket_DisconnectedClientMissesEvents(t *testing.T) {
	wsURL, h := startHub(t)

	stay := dial(t, wsURL)
	gone := dial(t, wsURL)
	waitMembers(t, h, 2)

	gone.Close()
	require.Eventually(t, func() bool { return h.Count() == 1 },
		2*time.Second, 10*time.Millisecond)

	h.Notify(status.EventAdded, map[string]any{"id": 2})

	env := readEnvelope(t, stay)
	assert.Equal(t, status.EventAdded, env.Event)
}

func TestWebsocket_ViewedSignalRoundTrip(t *testing.T) {
	wsURL, h := startHub(t)

	viewer := dial(t, wsURL)
	waitMembers(t, h, 1)

	require.NoError(t, viewer.WriteJSON(map[string]any{
		"action":         "viewed",
		"statusId":       42,
		"viewerUserId":   "u9",
		"viewerUserName": "eve",
	}))

	env := readEnvelope(t, viewer)
	require.Equal(t, status.EventViewed, env.Event)

	payload, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), payload["statusId"])
	assert.Equal(t, "u9", payload["viewerUserId"])
	assert.Equal(t, "eve", payload["viewerUserName"])
	assert.NotEmpty(t, payload["viewedAt"])
}

func TestWebsocket_MalformedFrameIsIgnored(t *testing.T) {
	wsURL, h := startHub(t)

	conn := dial(t, wsURL)
	waitMembers(t, h, 1)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	h.Notify(status.EventAdded, 1)
	env := readEnvelope(t, conn)
	assert.Equal(t, status.EventAdded, env.Event)
}
