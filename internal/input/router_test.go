package input

import "testing"

func TestRouter_DigitalAxis(t *testing.T) {
	tests := []struct {
		name string
		down []Code
		want float64
	}{
		{"nothing pressed", nil, 0},
		{"down only", []Code{CodeP1Down}, 1},
		{"up only", []Code{CodeP1Up}, -1},
		{"both cancel out", []Code{CodeP1Up, CodeP1Down}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter()
			for _, c := range tt.down {
				r.KeyDown(c)
			}
			in := r.P1Intent(0)
			if in.Axis != tt.want {
				t.Errorf("expected axis %f, got %f", tt.want, in.Axis)
			}
			if in.Analog {
				t.Error("expected digital intent")
			}
		})
	}
}

func TestRouter_KeyUpReleases(t *testing.T) {
	r := NewRouter()
	r.KeyDown(CodeP1Down)
	r.KeyUp(CodeP1Down)

	if in := r.P1Intent(0); in.Axis != 0 {
		t.Errorf("expected axis 0 after key up, got %f", in.Axis)
	}
}

func TestRouter_HeldKeyDecaysWithoutKeyUp(t *testing.T) {
	r := NewRouter()
	r.KeyDown(CodeP1Down)

	for i := 0; i < keyTTL-1; i++ {
		r.Tick()
		if in := r.P1Intent(0); in.Axis != 1 {
			t.Fatalf("tick %d: expected axis still 1, got %f", i, in.Axis)
		}
	}

	r.Tick()
	if in := r.P1Intent(0); in.Axis != 0 {
		t.Errorf("expected axis decayed to 0 after %d ticks, got %f", keyTTL, in.Axis)
	}
}

func TestRouter_RepeatedKeyDownRefreshesDecay(t *testing.T) {
	r := NewRouter()
	r.KeyDown(CodeP1Down)

	for i := 0; i < keyTTL*3; i++ {
		r.Tick()
		r.KeyDown(CodeP1Down)
	}

	if in := r.P1Intent(0); in.Axis != 1 {
		t.Errorf("expected axis held at 1 by repeats, got %f", in.Axis)
	}
}

func TestRouter_SecondPlayerLatch(t *testing.T) {
	r := NewRouter()
	if r.SecondPlayerActive() {
		t.Fatal("expected no second player initially")
	}

	r.KeyDown(CodeP2Up)
	if !r.SecondPlayerActive() {
		t.Fatal("expected second player after a player-2 key")
	}

	// The latch never reverts, even after release and decay.
	r.KeyUp(CodeP2Up)
	for i := 0; i < keyTTL*2; i++ {
		r.Tick()
	}
	if !r.SecondPlayerActive() {
		t.Error("expected second player latch to be permanent")
	}
}

func TestRouter_P2Axis(t *testing.T) {
	r := NewRouter()
	r.KeyDown(CodeP2Up)
	if axis := r.P2Axis(); axis != -1 {
		t.Errorf("expected P2 axis -1, got %f", axis)
	}
	r.KeyDown(CodeP2Down)
	if axis := r.P2Axis(); axis != 0 {
		t.Errorf("expected P2 axis 0 with both held, got %f", axis)
	}
}

func TestRouter_PointerIntent(t *testing.T) {
	r := NewRouter()
	r.PointerMoved(300)

	in := r.P1Intent(100)
	if !in.Analog {
		t.Fatal("expected analog intent from pointer")
	}
	// (pointerY - paddleCenterY) / 100, uncapped.
	if in.Axis != 2 {
		t.Errorf("expected axis 2, got %f", in.Axis)
	}

	r.PointerMoved(100)
	in = r.P1Intent(400)
	if in.Axis != -3 {
		t.Errorf("expected axis -3, got %f", in.Axis)
	}
}

func TestRouter_ActiveSourceFollowsLastEvent(t *testing.T) {
	r := NewRouter()
	if r.ActiveSource() != SourceKeyboard {
		t.Fatalf("expected keyboard active initially, got %s", r.ActiveSource())
	}

	r.PointerMoved(10)
	if r.ActiveSource() != SourcePointer {
		t.Errorf("expected pointer active, got %s", r.ActiveSource())
	}

	// A key press switches back to digital intent.
	r.KeyDown(CodeP1Up)
	if r.ActiveSource() != SourceKeyboard {
		t.Errorf("expected keyboard active, got %s", r.ActiveSource())
	}
	if in := r.P1Intent(0); in.Analog || in.Axis != -1 {
		t.Errorf("expected digital axis -1, got analog=%v axis=%f", in.Analog, in.Axis)
	}

	r.TouchMoved(250)
	if r.ActiveSource() != SourceTouch {
		t.Errorf("expected touch active, got %s", r.ActiveSource())
	}
	if in := r.P1Intent(50); !in.Analog || in.Axis != 2 {
		t.Errorf("expected analog axis 2 from touch, got analog=%v axis=%f", in.Analog, in.Axis)
	}
}

func TestRouter_TakeRelaunchConsumesEdge(t *testing.T) {
	r := NewRouter()
	r.KeyDown(CodeRelaunch)

	if !r.TakeRelaunch() {
		t.Fatal("expected pending relaunch")
	}
	if r.TakeRelaunch() {
		t.Error("expected relaunch edge consumed")
	}
}
