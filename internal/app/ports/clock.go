package ports

import "time"

// Clock abstracts the current time so expiry and sweep behavior are
// testable without real delays.
type Clock interface {
	Now() time.Time
}
