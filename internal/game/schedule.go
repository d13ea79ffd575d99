package game

import "time"

// ScheduledEvent is a deferred action with an explicit fire time and a
// cancellation token. Events fire from the tick handler on the same
// cooperative timeline as everything else; there are no free-running
// timer goroutines to race against.
type ScheduledEvent struct {
	fireAt   time.Time
	fn       func()
	canceled bool
}

// Cancel marks the event so it is dropped instead of fired.
func (e *ScheduledEvent) Cancel() {
	e.canceled = true
}

// Scheduler holds pending deferred actions (ball relaunch, post-score
// session reset). Scheduling while another event is pending is fine;
// the new one simply fires later in its own time.
type Scheduler struct {
	pending []*ScheduledEvent
}

// After schedules fn to run once delay has elapsed past now.
func (s *Scheduler) After(now time.Time, delay time.Duration, fn func()) *ScheduledEvent {
	ev := &ScheduledEvent{fireAt: now.Add(delay), fn: fn}
	s.pending = append(s.pending, ev)
	return ev
}

// Fire runs every due, non-canceled event and returns how many ran.
// Events scheduled by a firing event are kept for a later tick even if
// already due, so a reset cannot re-enter itself.
func (s *Scheduler) Fire(now time.Time) int {
	if len(s.pending) == 0 {
		return 0
	}

	due := s.pending
	s.pending = nil
	fired := 0
	for _, ev := range due {
		switch {
		case ev.canceled:
		case ev.fireAt.After(now):
			s.pending = append(s.pending, ev)
		default:
			ev.fn()
			fired++
		}
	}
	return fired
}

// Clear cancels everything pending. Used by the full session reset.
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Pending returns the number of scheduled, not-yet-fired events.
func (s *Scheduler) Pending() int {
	n := 0
	for _, ev := range s.pending {
		if !ev.canceled {
			n++
		}
	}
	return n
}
