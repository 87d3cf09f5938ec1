package hub

import (
	"context"
	"encoding/json"
	"sync"

	"statushub/internal/app/adapters/metrics"
	"statushub/internal/app/domain/status"
	"statushub/internal/app/ports"
	"statushub/pkg/logger"
)

// Envelope is the JSON frame sent to subscribers for every event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub owns the single broadcast group. Every open connection auto-joins on
// connect; an explicit leave keeps the socket open but stops deliveries.
// Fan-out is fire-and-forget per member: a dead or lagging peer is dropped,
// never surfaced to the Notify caller.
type Hub struct {
	log   logger.Logger
	clock ports.Clock

	mu      sync.RWMutex
	conns   map[ports.Connection]struct{}
	members map[ports.Connection]struct{}
}

func New(log logger.Logger, clock ports.Clock) *Hub {
	return &Hub{
		log:     log,
		clock:   clock,
		conns:   make(map[ports.Connection]struct{}),
		members: make(map[ports.Connection]struct{}),
	}
}

// Run blocks until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.closeAll()
}

// Join is idempotent.
func (h *Hub) Join(conn ports.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; !ok {
		return
	}
	h.members[conn] = struct{}{}
	metrics.GroupMembers.Set(float64(len(h.members)))
}

// Leave is idempotent.
func (h *Hub) Leave(conn ports.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.members, conn)
	metrics.GroupMembers.Set(float64(len(h.members)))
}

// OnConnect registers the connection and auto-joins it to the group.
func (h *Hub) OnConnect(conn ports.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}
	h.members[conn] = struct{}{}
	metrics.SubscribersConnected.Set(float64(len(h.conns)))
	metrics.GroupMembers.Set(float64(len(h.members)))
}

// OnDisconnect unregisters the connection and closes its delivery channel.
func (h *Hub) OnDisconnect(conn ports.Connection) {
	h.mu.Lock()
	_, ok := h.conns[conn]
	delete(h.conns, conn)
	delete(h.members, conn)
	metrics.SubscribersConnected.Set(float64(len(h.conns)))
	metrics.GroupMembers.Set(float64(len(h.members)))
	h.mu.Unlock()

	if ok {
		conn.Close()
	}
}

// Notify fans event out to every current member. Calls issued sequentially
// by one caller reach each member in issue order; delivery failures are
// logged and the peer dropped, nothing propagates back.
func (h *Hub) Notify(event string, payload any) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error("Failed to encode event", err, "event", event)
		return
	}

	h.mu.RLock()
	targets := make([]ports.Connection, 0, len(h.members))
	for conn := range h.members {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		if conn.Deliver(data) {
			continue
		}
		h.log.Warn("Dropping subscriber, delivery failed", "event", event)
		h.OnDisconnect(conn)
	}
	metrics.EventsBroadcast.WithLabelValues(event).Add(float64(len(targets)))
}

// ViewedEvent broadcasts a pass-through viewed signal with a server-assigned
// timestamp. It does not touch the store.
func (h *Hub) ViewedEvent(statusID int64, viewerUserID, viewerUserName string) {
	h.Notify(status.EventViewed, status.ViewedSignal{
		StatusID:       statusID,
		ViewerUserID:   viewerUserID,
		ViewerUserName: viewerUserName,
		ViewedAt:       h.clock.Now(),
	})
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// Members returns the current group size.
func (h *Hub) Members() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.members)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := make([]ports.Connection, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.conns = make(map[ports.Connection]struct{})
	h.members = make(map[ports.Connection]struct{})
	metrics.SubscribersConnected.Set(0)
	metrics.GroupMembers.Set(0)
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
}
