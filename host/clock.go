package host

import "time"

// SystemClock implements chip8.Clock using the host's wall clock.
// cmd/chip8run paces the 60 Hz timer/video tick by comparing
// successive Now values rather than a second parallel ticker.
type SystemClock struct{}

// Now implements chip8.Clock.
func (SystemClock) Now() int64 {
	return time.Now().UnixNano()
}
