package storage

import (
	"sort"
	"sync"
	"time"

	"statushub/internal/app/domain/status"
	"statushub/internal/app/ports"
)

// Store holds all live status records in memory. A single mutex serializes
// every operation; critical sections are short and never do I/O. Records are
// lost on restart by design.
//
// Reads filter by liveness, deletes target raw existence. An expired record
// that the sweeper has not collected yet is invisible to ListActive* but can
// still be removed by DeleteByID / DeleteAllByUser.
type Store struct {
	mu     sync.Mutex
	clock  ports.Clock
	ttl    time.Duration
	nextID int64
	items  map[int64]status.Status
}

func New(clock ports.Clock, ttl time.Duration) *Store {
	return &Store{
		clock: clock,
		ttl:   ttl,
		items: make(map[int64]status.Status),
	}
}

// Create assigns id, createdAt and expiresAt = createdAt + TTL, stores the
// record and returns a copy of it. The record is visible to queries as soon
// as Create returns.
func (s *Store) Create(p status.CreateParams) (*status.Status, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.clock.Now()
	rec := status.Status{
		ID:        s.nextID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Content:   p.Content,
		MediaURL:  p.MediaURL,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.items[rec.ID] = rec

	out := rec
	return &out, nil
}

// ListActive returns all live records, newest first.
func (s *Store) ListActive() []*status.Status {
	return s.listActive(func(status.Status) bool { return true })
}

// ListActiveByUser returns the user's live records, newest first.
func (s *Store) ListActiveByUser(userID string) []*status.Status {
	return s.listActive(func(rec status.Status) bool { return rec.UserID == userID })
}

func (s *Store) listActive(match func(status.Status) bool) []*status.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	out := make([]*status.Status, 0, len(s.items))
	for _, rec := range s.items {
		if !rec.Live(now) || !match(rec) {
			continue
		}
		cp := rec
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// DeleteByID removes the record regardless of liveness and returns it.
func (s *Store) DeleteByID(id int64) (*status.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, status.ErrNotFound
	}
	delete(s.items, id)

	out := rec
	return &out, nil
}

// DeleteAllByUser removes every record of the user, live or not, and returns
// the removed ids in ascending order. A user with zero records is NotFound.
func (s *Store) DeleteAllByUser(userID string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, rec := range s.items {
		if rec.UserID == userID {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, status.ErrNotFound
	}

	for _, id := range ids {
		delete(s.items, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// SweepExpired removes every record with expiresAt <= now and returns the
// removed ids in ascending order. An empty sweep returns nil.
func (s *Store) SweepExpired(now time.Time) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, rec := range s.items {
		if !rec.Live(now) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		delete(s.items, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len counts all physically present records, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}
