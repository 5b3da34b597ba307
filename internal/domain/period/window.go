// Package period models the (start, end) intervals shared by packages, signup lists and activities.
package period

import "time"

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// New builds a window.
func New(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// IsValid reports whether the window starts strictly before it ends.
func (w Window) IsValid() bool {
	return w.Start.Before(w.End)
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// HasStarted reports whether t is at or after Start.
func (w Window) HasStarted(t time.Time) bool {
	return !t.Before(w.Start)
}

// IsExpired reports whether t is strictly after End.
func (w Window) IsExpired(t time.Time) bool {
	return t.After(w.End)
}

// IsActive reports whether t is at or after Start and not past End.
func (w Window) IsActive(t time.Time) bool {
	return w.HasStarted(t) && !w.IsExpired(t)
}
