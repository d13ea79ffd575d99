package game

// EntityView is the drawable geometry of an entity.
type EntityView struct {
	X, Y          float64
	Width, Height float64
}

// PaddleView is what the renderer needs to draw one paddle.
type PaddleView struct {
	EntityView
	Score int
	Name  string
}

// BallView is what the renderer needs to draw the ball.
type BallView struct {
	EntityView
	Launched bool
}

// Snapshot is a point-in-time copy of the session handed to the
// presentation layers, so rendering never reaches into live state.
type Snapshot struct {
	Phase    Phase
	Paused   bool
	Muted    bool
	Title    string
	WinScore int
	Court    Bounds
	Player1  PaddleView
	Player2  PaddleView
	Ball     BallView
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:    s.State.Current,
		Paused:   s.State.Paused,
		Muted:    s.State.Muted,
		Title:    s.settings.Title,
		WinScore: s.State.WinScore,
		Court:    s.bounds,
		Player1: PaddleView{
			EntityView: entityView(&s.Player1.Entity),
			Score:      s.Player1.Score,
			Name:       s.settings.Player1Name,
		},
		Player2: PaddleView{
			EntityView: entityView(&s.Player2.Entity),
			Score:      s.Player2.Score,
			Name:       s.settings.Player2Name,
		},
		Ball: BallView{
			EntityView: entityView(&s.Ball.Entity),
			Launched:   s.Ball.Launched,
		},
	}
}

func entityView(e *Entity) EntityView {
	return EntityView{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}
