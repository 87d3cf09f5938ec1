package status

import (
	"strings"
	"time"
)

// Status is one ephemeral record. Fields are immutable after creation;
// the store assigns ID, CreatedAt and ExpiresAt itself.
type Status struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content,omitempty"`
	MediaURL  string    `json:"mediaUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Live reports whether the record has not yet expired at the given instant.
func (s *Status) Live(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// CreateParams carries caller-supplied fields of a new status.
type CreateParams struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Content  string `json:"content"`
	MediaURL string `json:"mediaUrl"`
}

// Validate rejects params with a missing publisher identity.
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return &ValidationError{Field: "userId", Reason: "required"}
	}
	if strings.TrimSpace(p.UserName) == "" {
		return &ValidationError{Field: "userName", Reason: "required"}
	}
	return nil
}

// ViewedSignal is the payload broadcast when a viewer looks at a status.
// It never touches the store.
type ViewedSignal struct {
	StatusID       int64     `json:"statusId"`
	ViewerUserID   string    `json:"viewerUserId"`
	ViewerUserName string    `json:"viewerUserName"`
	ViewedAt       time.Time `json:"viewedAt"`
}

// Event names delivered to subscribers.
const (
	EventAdded   = "StatusAdded"
	EventDeleted = "StatusDeleted"
	EventExpired = "StatusExpired"
	EventViewed  = "StatusViewed"
)
