package hub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"statushub/pkg/logger"
)

const (
	// writeWait is the deadline for a single write to a peer.
	writeWait = 10 * time.Second

	// pongWait is how long to wait for a pong before treating the
	// connection as dead. pingPeriod must be shorter.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	// sendBufSize is the per-client outgoing buffer depth. A member that
	// falls this far behind is dropped.
	sendBufSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Origins are not checked here, the original service ran with open CORS.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientCommand is a frame sent by the peer: an explicit group join/leave or
// a viewed signal to be re-broadcast.
type clientCommand struct {
	Action         string `json:"action"`
	StatusID       int64  `json:"statusId"`
	ViewerUserID   string `json:"viewerUserId"`
	ViewerUserName string `json:"viewerUserName"`
}

// client is one websocket subscriber.
type client struct {
	log  logger.Logger
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the error response.
		return
	}

	c := &client{
		log:  h.log,
		conn: conn,
		send: make(chan []byte, sendBufSize),
	}
	h.OnConnect(c)
	defer h.OnDisconnect(c)

	go c.writePump()
	c.readPump(h) // blocks until the connection closes
}

// Deliver enqueues data without blocking. It reports false when the client
// is gone or its buffer is full.
func (c *client) Deliver(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close shuts the delivery channel; writePump then closes the socket.
func (c *client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump handles inbound frames and detects disconnects.
func (c *client) readPump(h *Hub) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd clientCommand
		if err := json.Unmarshal(msg, &cmd); err != nil {
			c.log.Debug("Ignoring malformed client frame", "error", err.Error())
			continue
		}

		switch cmd.Action {
		case "join":
			h.Join(c)
		case "leave":
			h.Leave(c)
		case "viewed":
			h.ViewedEvent(cmd.StatusID, cmd.ViewerUserID, cmd.ViewerUserName)
		default:
			c.log.Debug("Ignoring unknown client action", "action", cmd.Action)
		}
	}
}
