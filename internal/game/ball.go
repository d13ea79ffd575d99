package game

import "math"

// Ball is a movable entity with a two-state launch protocol. While
// stopped it ignores move commands entirely.
type Ball struct {
	Entity

	// DirX and DirY are signed unit directions. Stop zeroes DirX and
	// leaves DirY untouched.
	DirX, DirY int

	Launched bool
}

// NewBall creates a stopped ball. The vertical direction starts
// downward so the first launch has some angle.
func NewBall(x, y, size, speed float64, bounds Bounds) (*Ball, error) {
	e, err := NewEntity(x, y, size, size, speed, bounds)
	if err != nil {
		return nil, err
	}
	return &Ball{Entity: *e, DirY: 1}, nil
}

// Launch puts the ball in play heading toward dirX and jumps it clear
// of the serving paddle by edgeOffset plus its own width. Launching an
// already-launched ball simply re-launches it. A zero dirX is refused;
// the caller decides how loudly to complain.
func (b *Ball) Launch(dirX int, edgeOffset float64) bool {
	if dirX == 0 {
		return false
	}
	b.DirX = sign(dirX)
	b.Launched = true
	b.MoveTo(b.X+(edgeOffset+b.Width)*float64(b.DirX), b.Y)
	return true
}

// Stop takes the ball out of play. The vertical direction is kept so a
// later launch continues on the same diagonal.
func (b *Ball) Stop() {
	b.Launched = false
	b.DirX = 0
}

// Move advances the ball along its current directions. No-op while
// stopped.
func (b *Ball) Move(scale float64) error {
	if !b.Launched {
		return nil
	}
	return b.Entity.Move(float64(b.DirX), float64(b.DirY), scale)
}

// BounceVertical reverses the vertical direction.
func (b *Ball) BounceVertical() {
	b.DirY = -b.DirY
}

// CollidesWith is a center-distance proximity test, deliberately more
// lenient than a strict AABB intersection: the ball's center must be
// inside the paddle's vertical span and the horizontal center distance
// under half the combined widths.
func (b *Ball) CollidesWith(p *Paddle) bool {
	vertical := p.Y < b.CenterY && b.CenterY < p.Y+p.Height
	horizontal := math.Abs(p.CenterX-b.CenterX) < (p.Width+b.Width)/2
	return vertical && horizontal
}

// CollisionsWith returns the first paddle in list order the ball
// collides with, or nil.
func (b *Ball) CollisionsWith(paddles []*Paddle) *Paddle {
	for _, p := range paddles {
		if b.CollidesWith(p) {
			return p
		}
	}
	return nil
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
