package game

// ComputerOpponent drives the left paddle with a coarse proportional
// tracker. It is intentionally beatable: the correction is clamped by
// the difficulty setting and weakens the further the ball is from the
// left edge.
type ComputerOpponent struct {
	Difficulty float64
}

// Axis returns the vertical move axis for the computer paddle. It only
// tracks while the ball is launched and moving toward it; otherwise it
// holds still.
func (c ComputerOpponent) Axis(ball *Ball, paddle *Paddle) float64 {
	if !ball.Launched || ball.DirX >= 0 {
		return 0
	}
	offset := ball.Y/2 - paddle.Y
	axis := offset / (ball.X * 2)
	limit := c.Difficulty / 2
	return clampFloat(axis, -limit, limit)
}
