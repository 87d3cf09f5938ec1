package ports

// Connection is an opaque handle for one subscriber. Deliver must not block;
// it reports false when the payload was dropped (slow or dead peer).
type Connection interface {
	Deliver(data []byte) bool
	Close()
}

// HubPort maintains the single broadcast group and fans events out to its
// current members. Delivery is best-effort: a member missing at the moment
// of Notify never receives that event.
type HubPort interface {
	// Join and Leave are idempotent.
	Join(conn Connection)
	Leave(conn Connection)

	// OnConnect auto-joins the connection, OnDisconnect auto-leaves it.
	OnConnect(conn Connection)
	OnDisconnect(conn Connection)

	Notify(event string, payload any)
	ViewedEvent(statusID int64, viewerUserID, viewerUserName string)

	// Count is the number of open connections, Members the group size.
	Count() int
	Members() int
}
