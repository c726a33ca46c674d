// Package stats tracks process-wide request statistics.  The counter lives
// in an explicitly owned struct that is injected where needed instead of a
// package-level global, so tests can create isolated instances.
package stats

import (
    "sync/atomic" // atomic guarantees the counter is safe under concurrent increments
    "time"        // time captures the process start timestamp
)

// Stats bundles the total request counter with the moment the process
// started.  The zero value is not usable; construct instances with New.
type Stats struct {
    started  time.Time
    requests atomic.Int64
}

// New returns a Stats whose start time is the current moment.
func New() *Stats {
    return &Stats{started: time.Now()}
}

// Inc records one handled request.  Safe for concurrent use.
func (s *Stats) Inc() {
    s.requests.Add(1)
}

// Count returns the number of requests recorded so far.
func (s *Stats) Count() int64 {
    return s.requests.Load()
}

// StartTime returns the moment the process started.
func (s *Stats) StartTime() time.Time {
    return s.started
}

// Uptime returns the seconds elapsed since the process started.
func (s *Stats) Uptime() float64 {
    return time.Since(s.started).Seconds()
}
