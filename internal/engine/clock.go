package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Model reads the current instant through it on every snapshot.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current instant.
func (RealClock) Now() time.Time {
	return time.Now()
}
