// Package daterange implements the calendar range selection state machine
// behind the flight entry forms. A Selector walks through Empty → Partial →
// Complete via day clicks and keeps the numeric day count and the from/to pair
// — two views of the same interval — from ever diverging.
package daterange

import "time"

// State enumerates the three selection states.
type State int

const (
	// Empty: no dates chosen.
	Empty State = iota
	// Partial: start date chosen, end date pending.
	Partial
	// Complete: both dates chosen, from <= to.
	Complete
)

// String returns the state name for logs and test failure messages.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Selector is the range selection state machine. The zero value is Empty and
// ready to use. All methods work on whole calendar days; any time-of-day
// component on incoming dates is discarded.
//
// Whenever the selector is Complete, from <= to holds and
// Days() == (to-from)+1 inclusive.
type Selector struct {
	state State
	from  time.Time
	to    time.Time
}

// State reports the current selection state.
func (s *Selector) State() State { return s.state }

// Range returns the selected dates. From is the zero Time in Empty; To is the
// zero Time unless the state is Complete.
func (s *Selector) Range() (from, to time.Time) { return s.from, s.to }

// Click applies a calendar-day click:
//
//	Empty:    d becomes the start date.
//	Partial:  clicking the start date again deselects it; an earlier day
//	          restarts the range from that day; a later day completes it.
//	Complete: any click abandons the range and starts a new one at d —
//	          a complete range is never edited in place.
func (s *Selector) Click(d time.Time) {
	d = truncate(d)

	switch s.state {
	case Empty:
		s.state, s.from = Partial, d
	case Partial:
		switch {
		case d.Equal(s.from):
			s.reset()
		case d.Before(s.from):
			s.from = d
		default:
			s.state, s.to = Complete, d
		}
	case Complete:
		s.state, s.from, s.to = Partial, d, time.Time{}
	}
}

// Clear returns the selector to Empty from any state.
func (s *Selector) Clear() { s.reset() }

// Done confirms the selection. In Partial the range auto-completes as a
// single-day trip (to = from); in any other state Done is a no-op.
func (s *Selector) Done() {
	if s.state == Partial {
		s.state, s.to = Complete, s.from
	}
}

// SetRange loads a range programmatically, e.g. when editing an existing
// record. An inverted pair is normalized by swapping, never rejected.
func (s *Selector) SetRange(from, to time.Time) {
	from, to = truncate(from), truncate(to)
	if to.Before(from) {
		from, to = to, from
	}
	s.state, s.from, s.to = Complete, from, to
}

// SetDays re-derives the end date from an inclusive day count, keeping the
// start date fixed: to = from + (n-1). This is the numeric-input side of the
// bidirectional binding with the calendar. Ignored when no start date is set
// or n < 1.
func (s *Selector) SetDays(n int) {
	if n < 1 || s.state == Empty {
		return
	}
	s.state = Complete
	s.to = s.from.AddDate(0, 0, n-1)
}

// Days returns the inclusive length of the selected range, or 0 when the
// range is not complete.
func (s *Selector) Days() int {
	if s.state != Complete {
		return 0
	}
	// Both endpoints are midnight UTC, so hour arithmetic is exact.
	return int(s.to.Sub(s.from).Hours()/24) + 1
}

func (s *Selector) reset() { *s = Selector{} }

// truncate drops the time-of-day component, pinning the calendar day in UTC.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
