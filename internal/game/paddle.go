package game

// Owner identifies which player a paddle belongs to.
type Owner int

const (
	OwnerPlayer1 Owner = 1 // right side, human
	OwnerPlayer2 Owner = 2 // left side, computer or second human
)

func (o Owner) String() string {
	if o == OwnerPlayer2 {
		return "player2"
	}
	return "player1"
}

// Paddle is a movable entity with a score counter. Scores only ever
// increase; they are written by the session's scoring rules alone.
type Paddle struct {
	Entity
	Owner Owner
	Score int
}

// NewPaddle creates a paddle for the given owner.
func NewPaddle(owner Owner, x, y, width, height, speed float64, bounds Bounds) (*Paddle, error) {
	e, err := NewEntity(x, y, width, height, speed, bounds)
	if err != nil {
		return nil, err
	}
	return &Paddle{Entity: *e, Owner: owner}, nil
}

// AddPoint increments the score by exactly one.
func (p *Paddle) AddPoint() {
	p.Score++
}
