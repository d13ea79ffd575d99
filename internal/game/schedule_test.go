package game

import (
	"testing"
	"time"
)

func TestScheduler_FiresDueEvents(t *testing.T) {
	var s Scheduler
	t0 := time.Now()
	fired := 0

	s.After(t0, time.Second, func() { fired++ })

	if n := s.Fire(t0.Add(500 * time.Millisecond)); n != 0 {
		t.Errorf("expected nothing due at +500ms, fired %d", n)
	}
	if fired != 0 {
		t.Errorf("expected callback not run yet, ran %d times", fired)
	}

	if n := s.Fire(t0.Add(time.Second)); n != 1 {
		t.Errorf("expected one event due at +1s, fired %d", n)
	}
	if fired != 1 {
		t.Errorf("expected callback run once, ran %d times", fired)
	}

	// Fired events are gone.
	if n := s.Fire(t0.Add(2 * time.Second)); n != 0 {
		t.Errorf("expected no repeat fire, fired %d", n)
	}
}

func TestScheduler_CancelToken(t *testing.T) {
	var s Scheduler
	t0 := time.Now()
	fired := false

	ev := s.After(t0, time.Second, func() { fired = true })
	ev.Cancel()

	if n := s.Fire(t0.Add(2 * time.Second)); n != 0 {
		t.Errorf("expected canceled event not to fire, fired %d", n)
	}
	if fired {
		t.Error("expected canceled callback not to run")
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending events, got %d", s.Pending())
	}
}

func TestScheduler_OverlappingTimersRunInTheirOwnTime(t *testing.T) {
	var s Scheduler
	t0 := time.Now()
	var order []string

	s.After(t0, time.Second, func() { order = append(order, "first") })
	s.After(t0, 3*time.Second, func() { order = append(order, "second") })

	s.Fire(t0.Add(time.Second))
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("expected only the first event at +1s, got %v", order)
	}
	if s.Pending() != 1 {
		t.Errorf("expected one still pending, got %d", s.Pending())
	}

	s.Fire(t0.Add(3 * time.Second))
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("expected the second event at +3s, got %v", order)
	}
}

func TestScheduler_EventScheduledDuringFireWaitsATick(t *testing.T) {
	var s Scheduler
	t0 := time.Now()
	nested := false

	s.After(t0, time.Second, func() {
		s.After(t0, 0, func() { nested = true })
	})

	s.Fire(t0.Add(2 * time.Second))
	if nested {
		t.Error("expected nested event to wait for the next Fire")
	}

	s.Fire(t0.Add(2 * time.Second))
	if !nested {
		t.Error("expected nested event to fire on the next Fire")
	}
}

func TestScheduler_Clear(t *testing.T) {
	var s Scheduler
	t0 := time.Now()
	fired := false

	s.After(t0, time.Second, func() { fired = true })
	s.Clear()

	s.Fire(t0.Add(2 * time.Second))
	if fired {
		t.Error("expected cleared events not to fire")
	}
}
