package domain

import (
	"time"
)

// ClockEventKind is the type of a time-and-attendance punch.
type ClockEventKind string

const (
	ClockEntry      ClockEventKind = "entry"
	ClockExit       ClockEventKind = "exit"
	ClockBreakStart ClockEventKind = "break_start"
	ClockBreakEnd   ClockEventKind = "break_end"
)

// OpensInterval reports whether this kind starts a worked interval.
func (k ClockEventKind) OpensInterval() bool {
	return k == ClockEntry || k == ClockBreakEnd
}

// ClosesInterval reports whether this kind ends a worked interval.
func (k ClockEventKind) ClosesInterval() bool {
	return k == ClockExit || k == ClockBreakStart
}

// ClockEvent is a single raw punch. A day's worked time is derived from the
// ordered sequence of events supplied by the attendance layer; the engine
// stores nothing.
type ClockEvent struct {
	Timestamp time.Time      `yaml:"timestamp" json:"timestamp"`
	Kind      ClockEventKind `yaml:"kind" json:"kind"`
}
