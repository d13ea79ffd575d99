// Package input normalizes keyboard, pointer and touch signals into
// per-paddle directional intents. It knows nothing about tcell or the
// game; hosts feed it logical codes and coordinates.
package input

// Source is an input device class. The router tracks whichever source
// most recently produced an event as the active one.
type Source int

const (
	SourceKeyboard Source = iota
	SourcePointer
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	}
	return "keyboard"
}

// Code is a logical key, already mapped from whatever the host's raw
// events look like.
type Code int

const (
	CodeP1Up Code = iota
	CodeP1Down
	CodeP2Up
	CodeP2Down
	CodeRelaunch
	CodePause
)

// pointerDivisor softens the analog offset: one cell of axis per 100
// cells of distance between pointer and paddle center.
const pointerDivisor = 100.0

// keyTTL keeps a digital key "pressed" for this many ticks after its
// last key-down. Terminal hosts get no key-up events, so held keys are
// modeled as repeated downs that refresh the countdown. Hosts that do
// see key-ups call KeyUp and never rely on the decay.
const keyTTL = 8

type pressState struct {
	down bool
	ttl  int
}

func (p *pressState) press() {
	p.down = true
	p.ttl = keyTTL
}

func (p *pressState) release() {
	p.down = false
	p.ttl = 0
}

func (p *pressState) tick() {
	if p.down && p.ttl > 0 {
		p.ttl--
		if p.ttl == 0 {
			p.down = false
		}
	}
}

func (p *pressState) value() float64 {
	if p.down {
		return 1
	}
	return 0
}

// Intent is one paddle's movement command for a tick. Digital intents
// are applied with the frame scale; analog (pointer/touch) intents are
// raw offsets applied with scale 1.
type Intent struct {
	Axis   float64
	Analog bool
}

// Router holds the last-known intent per source plus the active-source
// selector and the second-player latch.
type Router struct {
	active Source
	second bool

	p1Up, p1Down pressState
	p2Up, p2Down pressState

	pointerY   float64
	hasPointer bool
	touchY     float64
	hasTouch   bool

	relaunch bool
}

// NewRouter starts with the keyboard active and no second player.
func NewRouter() *Router {
	return &Router{active: SourceKeyboard}
}

// KeyDown records a logical key press. Player 2 keys permanently latch
// the second player as present for the rest of the session.
func (r *Router) KeyDown(code Code) {
	r.active = SourceKeyboard
	switch code {
	case CodeP1Up:
		r.p1Up.press()
	case CodeP1Down:
		r.p1Down.press()
	case CodeP2Up:
		r.second = true
		r.p2Up.press()
	case CodeP2Down:
		r.second = true
		r.p2Down.press()
	case CodeRelaunch:
		r.relaunch = true
	}
}

// KeyUp records a logical key release, for hosts that have them.
func (r *Router) KeyUp(code Code) {
	switch code {
	case CodeP1Up:
		r.p1Up.release()
	case CodeP1Down:
		r.p1Down.release()
	case CodeP2Up:
		r.p2Up.release()
	case CodeP2Down:
		r.p2Down.release()
	}
}

// PointerMoved records a pointer position. Every move makes the
// pointer the active source.
func (r *Router) PointerMoved(y float64) {
	r.active = SourcePointer
	r.pointerY = y
	r.hasPointer = true
}

// TouchMoved records a touch position, same contract as PointerMoved.
func (r *Router) TouchMoved(y float64) {
	r.active = SourceTouch
	r.touchY = y
	r.hasTouch = true
}

// Tick decays digital key state. Call once per simulation tick.
func (r *Router) Tick() {
	r.p1Up.tick()
	r.p1Down.tick()
	r.p2Up.tick()
	r.p2Down.tick()
}

// P1Intent computes player 1's intent for this tick. The digital axis
// is down(+1) plus up(-1); the analog axis is the offset between the
// pointer and the paddle center, divided by the softening constant and
// deliberately uncapped.
func (r *Router) P1Intent(paddleCenterY float64) Intent {
	switch r.active {
	case SourcePointer:
		if r.hasPointer {
			return Intent{Axis: (r.pointerY - paddleCenterY) / pointerDivisor, Analog: true}
		}
	case SourceTouch:
		if r.hasTouch {
			return Intent{Axis: (r.touchY - paddleCenterY) / pointerDivisor, Analog: true}
		}
	}
	return Intent{Axis: r.p1Down.value() - r.p1Up.value()}
}

// P2Axis computes player 2's digital axis. Meaningful only once the
// second player is active.
func (r *Router) P2Axis() float64 {
	return r.p2Down.value() - r.p2Up.value()
}

// SecondPlayerActive reports whether a second human ever pressed their
// keys this session. It never reverts.
func (r *Router) SecondPlayerActive() bool {
	return r.second
}

// ActiveSource returns whichever source most recently produced an
// event.
func (r *Router) ActiveSource() Source {
	return r.active
}

// TakeRelaunch consumes a pending relaunch press edge.
func (r *Router) TakeRelaunch() bool {
	v := r.relaunch
	r.relaunch = false
	return v
}
