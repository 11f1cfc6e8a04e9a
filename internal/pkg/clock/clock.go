// Package clock stamps records with the current time.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/KirkDiggler/arcanum-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// NewFixed returns a clock frozen at unix second sec.
func NewFixed(sec int64) *Fixed {
	return &Fixed{At: time.Unix(sec, 0).UTC()}
}

// Now returns the frozen instant
func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the frozen instant forward.
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
