// Package timing provides the clock source the rest of the device polls and
// sleeps against. Everything that consumes time goes through the Clock
// interface so tests can substitute a simulated source and run the blocking
// paths instantly.
package timing

import "time"

// Clock abstracts the monotonic time source and delay mechanism.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System implements Clock using the standard time package.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least d.
func (System) Sleep(d time.Duration) { time.Sleep(d) }
