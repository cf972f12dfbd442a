package engine

import "time"

// Clock supplies wall-clock timestamps for records leaving the simulation
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time
type TimeProvider struct{}

// NewTimeProvider creates a new system time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
