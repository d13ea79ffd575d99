package game

import "errors"

// Facing names the side an entity is moving toward.
type Facing int

const (
	FacingLeft  Facing = 0
	FacingRight Facing = 1
)

// ErrNoBounds is returned when movement is commanded on an entity that
// was never given a valid playing area.
var ErrNoBounds = errors.New("entity has no bounds")

// Entity is the shared movable/bounded capability of every game object.
// Paddle and Ball embed it and add their own state.
type Entity struct {
	X, Y         float64
	PrevX, PrevY float64

	// Centers are derived from position and recomputed on every move.
	CenterX, CenterY float64

	// Velocity is the position delta of the last move, kept for
	// downstream consumers such as motion effects.
	VelX, VelY float64

	Width, Height float64
	Speed         float64
	Facing        Facing
	Bounds        Bounds
}

// NewEntity creates an entity at the given position. The bounds must be
// a valid rectangle; entities without bounds cannot move.
func NewEntity(x, y, width, height, speed float64, bounds Bounds) (*Entity, error) {
	if !bounds.Valid() {
		return nil, ErrNoBounds
	}
	e := &Entity{
		Width:  width,
		Height: height,
		Speed:  speed,
		Bounds: bounds,
	}
	e.place(x, y)
	e.PrevX, e.PrevY = e.X, e.Y
	e.VelX, e.VelY = 0, 0
	return e, nil
}

// Move advances the entity one step along the commanded axes. A zero
// axis leaves that coordinate untouched. Candidates outside the bounds
// snap to the nearest edge rather than being rejected. A negative
// horizontal axis turns the entity to face right, a positive one to
// face left; zero leaves facing unchanged.
func (e *Entity) Move(axisX, axisY, scale float64) error {
	if !e.Bounds.Valid() {
		return ErrNoBounds
	}

	nx, ny := e.X, e.Y
	if axisX != 0 {
		nx = e.X + axisX*e.Speed*scale
	}
	if axisY != 0 {
		ny = e.Y + axisY*e.Speed*scale
	}
	e.place(nx, ny)

	if axisX < 0 {
		e.Facing = FacingRight
	} else if axisX > 0 {
		e.Facing = FacingLeft
	}
	return nil
}

// place clamps the candidate position into the bounds and updates the
// previous position, velocity and center.
func (e *Entity) place(nx, ny float64) {
	nx = clampFloat(nx, e.Bounds.Left, e.Bounds.Right-e.Width)
	ny = clampFloat(ny, e.Bounds.Top, e.Bounds.Bottom-e.Height)

	e.PrevX, e.PrevY = e.X, e.Y
	e.X, e.Y = nx, ny
	e.VelX = e.X - e.PrevX
	e.VelY = e.Y - e.PrevY
	e.CenterX = e.X + e.Width/2
	e.CenterY = e.Y + e.Height/2
}

// MoveTo teleports the entity, clamped into bounds. Used for serves and
// session resets.
func (e *Entity) MoveTo(x, y float64) {
	e.place(x, y)
}

// AtTop reports whether the entity touches the top bound.
func (e *Entity) AtTop() bool {
	return e.Y <= e.Bounds.Top
}

// AtBottom reports whether the entity touches the bottom bound.
func (e *Entity) AtBottom() bool {
	return e.Y >= e.Bounds.Bottom-e.Height
}

// AtLeft reports whether the entity touches the left bound.
func (e *Entity) AtLeft() bool {
	return e.X <= e.Bounds.Left
}

// AtRight reports whether the entity touches the right bound.
func (e *Entity) AtRight() bool {
	return e.X >= e.Bounds.Right-e.Width
}
