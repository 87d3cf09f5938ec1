package clock

import "time"

// System is the wall clock. Timestamps are UTC.
type System struct{}

func New() *System {
	return &System{}
}

func (*System) Now() time.Time {
	return time.Now().UTC()
}
