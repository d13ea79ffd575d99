package game

import "time"

// Target display cadence. The delta scale is 1.0 when frames arrive at
// exactly this rate on a reference-width court.
const (
	TickRate            = 60
	baseFrameMs         = 1000.0 / TickRate
	referenceCourtWidth = 80.0
)

// FrameTiming makes movement roughly frame-rate independent: each tick
// derives a scale factor from the elapsed time and the court width.
type FrameTiming struct {
	Seq     uint64
	Last    time.Time
	DeltaMs float64
	Scale   float64
}

// Advance records a new frame timestamp and recomputes the delta and
// scale. The very first frame (and the first one after Rebase) gets a
// zero delta so no catch-up movement is applied.
func (t *FrameTiming) Advance(now time.Time, courtWidth float64) {
	t.Seq++
	if t.Last.IsZero() {
		t.DeltaMs = 0
	} else {
		t.DeltaMs = float64(now.Sub(t.Last)) / float64(time.Millisecond)
	}
	t.Last = now
	t.Scale = (t.DeltaMs / baseFrameMs) * (courtWidth / referenceCourtWidth)
}

// Rebase forgets the last timestamp, so the next Advance yields a zero
// delta. Called on resume from pause.
func (t *FrameTiming) Rebase() {
	t.Last = time.Time{}
}
