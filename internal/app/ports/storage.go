package ports

import (
	"time"

	"statushub/internal/app/domain/status"
)

// StoragePort is the status store contract. All operations are atomic with
// respect to each other; reads never return an expired record even if the
// sweeper has not removed it yet.
type StoragePort interface {
	Create(p status.CreateParams) (*status.Status, error)
	ListActive() []*status.Status
	ListActiveByUser(userID string) []*status.Status

	// DeleteByID and DeleteAllByUser target raw existence: an expired but
	// not yet swept record can still be deleted explicitly.
	DeleteByID(id int64) (*status.Status, error)
	DeleteAllByUser(userID string) ([]int64, error)

	// SweepExpired removes every record with expiresAt <= now and returns
	// the removed ids. It never fails.
	SweepExpired(now time.Time) []int64

	Len() int
}
