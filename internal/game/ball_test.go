package game

import "testing"

func TestBall_StartsStopped(t *testing.T) {
	ball, err := NewBall(400, 300, 2, 1, testBounds())
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	if ball.Launched {
		t.Error("expected new ball to be stopped")
	}
	if ball.DirX != 0 {
		t.Errorf("expected DirX=0 on new ball, got %d", ball.DirX)
	}
}

func TestBall_Move_NoOpWhileStopped(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())
	ball.DirY = 1

	if err := ball.Move(1); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if ball.X != 400 || ball.Y != 300 {
		t.Errorf("expected position unchanged while stopped, got (%f,%f)", ball.X, ball.Y)
	}
}

func TestBall_Launch(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())

	if !ball.Launch(-1, 3) {
		t.Fatal("expected launch to succeed")
	}

	if !ball.Launched {
		t.Error("expected Launched=true immediately after launch")
	}
	if ball.DirX != -1 {
		t.Errorf("expected DirX=-1, got %d", ball.DirX)
	}
	// Position jumps by (edgeOffset+width)*dirX.
	if ball.X != 395 {
		t.Errorf("expected X=395 after launch jump, got %f", ball.X)
	}
}

func TestBall_Launch_ZeroDirectionRefused(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())

	if ball.Launch(0, 3) {
		t.Error("expected launch with zero direction to be refused")
	}
	if ball.Launched {
		t.Error("expected ball to stay stopped")
	}
}

func TestBall_Relaunch_NoGuard(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())

	ball.Launch(-1, 3)
	if !ball.Launch(1, 3) {
		t.Fatal("expected re-launch to succeed")
	}
	if ball.DirX != 1 {
		t.Errorf("expected DirX=1 after re-launch, got %d", ball.DirX)
	}
}

func TestBall_Stop(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())
	ball.DirY = -1
	ball.Launch(1, 0)

	ball.Stop()

	if ball.Launched {
		t.Error("expected Launched=false after stop")
	}
	if ball.DirX != 0 {
		t.Errorf("expected DirX=0 after stop, got %d", ball.DirX)
	}
	if ball.DirY != -1 {
		t.Errorf("expected vertical direction untouched by stop, got %d", ball.DirY)
	}

	// Stop followed by move leaves position unchanged.
	x, y := ball.X, ball.Y
	ball.Move(1)
	if ball.X != x || ball.Y != y {
		t.Errorf("expected position unchanged after stop+move, got (%f,%f)", ball.X, ball.Y)
	}
}

func TestBall_Move_UsesDirections(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 3, testBounds())
	ball.DirY = -1
	ball.Launch(-1, 0)

	x := ball.X
	if err := ball.Move(1); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if ball.X != x-3 {
		t.Errorf("expected X=%f, got %f", x-3, ball.X)
	}
	if ball.Y != 297 {
		t.Errorf("expected Y=297, got %f", ball.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball, _ := NewBall(400, 300, 2, 1, testBounds())
	ball.DirY = 1

	ball.BounceVertical()
	if ball.DirY != -1 {
		t.Errorf("expected DirY=-1 after bounce, got %d", ball.DirY)
	}
}

func TestBall_CollidesWith(t *testing.T) {
	bounds := Bounds{Top: 0, Right: 1000, Bottom: 600, Left: 0}

	// Paddle centered at (400,300): width 20, height 100.
	paddle, err := NewPaddle(OwnerPlayer1, 390, 250, 20, 100, 1, bounds)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}

	tests := []struct {
		name             string
		centerX, centerY float64
		want             bool
	}{
		{"dead center", 400, 300, true},
		{"inside vertical span", 405, 330, true},
		{"horizontal centers too far", 500, 300, false},
		{"just inside combined half widths", 410, 300, true},
		{"at combined half widths", 411, 300, false},
		{"above paddle", 400, 240, false},
		{"below paddle", 400, 360, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, err := NewBall(tt.centerX-1, tt.centerY-1, 2, 1, bounds)
			if err != nil {
				t.Fatalf("NewBall: %v", err)
			}
			if got := ball.CollidesWith(paddle); got != tt.want {
				t.Errorf("CollidesWith at center (%f,%f) = %v, want %v",
					tt.centerX, tt.centerY, got, tt.want)
			}
		})
	}
}

func TestBall_CollisionsWith_FirstInOrder(t *testing.T) {
	bounds := Bounds{Top: 0, Right: 1000, Bottom: 600, Left: 0}

	p1, _ := NewPaddle(OwnerPlayer1, 390, 250, 20, 100, 1, bounds)
	p2, _ := NewPaddle(OwnerPlayer2, 395, 250, 20, 100, 1, bounds)
	ball, _ := NewBall(399, 299, 2, 1, bounds)

	got := ball.CollisionsWith([]*Paddle{p1, p2})
	if got != p1 {
		t.Errorf("expected first paddle in list order, got %v", got)
	}

	if ball.CollisionsWith([]*Paddle{}) != nil {
		t.Error("expected nil for empty list")
	}

	far, _ := NewPaddle(OwnerPlayer2, 700, 250, 20, 100, 1, bounds)
	if ball.CollisionsWith([]*Paddle{far}) != nil {
		t.Error("expected nil when nothing collides")
	}
}
