package game

import (
	"log"
	"time"

	"github.com/diegok/termpong/internal/config"
)

// Deferred-action delays and per-hit speedups. Rallies accelerate
// faster off the left paddle on purpose.
const (
	RelaunchDelay = time.Second
	ResetDelay    = 3 * time.Second

	hitSpeedupPlayer1 = 0.05
	hitSpeedupPlayer2 = 0.15
)

// Event is something a tick did that the presentation layers care
// about (sound cues, overlay changes).
type Event int

const (
	EventStarted Event = iota
	EventWallBounce
	EventPaddleHit
	EventScore
	EventLaunch
	EventWin
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventScore:
		return "score"
	case EventLaunch:
		return "launch"
	case EventWin:
		return "win"
	case EventReset:
		return "reset"
	}
	return "event"
}

// Intents is the already-normalized input for one tick. Analog axes
// (pointer/touch) bypass frame scaling and are applied with scale 1.
type Intents struct {
	P1Axis       float64
	P1Analog     bool
	P2Axis       float64
	SecondPlayer bool
	Start        bool
	Relaunch     bool
}

// Session is the one explicit owner of all mutable game state: phase
// machine, paddles, ball, frame timing and the deferred-action
// scheduler. Everything is mutated from Step and from scheduled events
// fired inside Step, on a single cooperative timeline.
type Session struct {
	settings *config.Settings
	bounds   Bounds

	State   *StateMachine
	Player1 *Paddle // right side
	Player2 *Paddle // left side
	Ball    *Ball
	AI      ComputerOpponent
	Timing  FrameTiming

	sched  Scheduler
	logger *log.Logger

	now    time.Time
	events []Event
}

// NewSession builds a session for the given court bounds. The bounds
// come from the screen and must be a valid rectangle.
func NewSession(settings *config.Settings, bounds Bounds, logger *log.Logger) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !bounds.Valid() {
		return nil, ErrNoBounds
	}

	s := &Session{
		settings: settings,
		bounds:   bounds,
		logger:   logger,
		State:    NewStateMachine(settings.WinScore),
		AI:       ComputerOpponent{Difficulty: settings.Difficulty},
	}
	s.State.Muted = settings.Muted
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild recreates the entities from the settings bundle. Called once
// at construction and again on every full session reset.
func (s *Session) rebuild() error {
	cfg := s.settings
	midY := s.bounds.Top + (s.bounds.Height()-cfg.PaddleHeight)/2

	p1, err := NewPaddle(OwnerPlayer1,
		s.bounds.Right-cfg.PaddleWidth-1, midY,
		cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, s.bounds)
	if err != nil {
		return err
	}
	p2, err := NewPaddle(OwnerPlayer2,
		s.bounds.Left+1, midY,
		cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, s.bounds)
	if err != nil {
		return err
	}
	ball, err := NewBall(
		s.bounds.Left+s.bounds.Width()/2,
		s.bounds.Top+s.bounds.Height()/2,
		cfg.BallSize, cfg.BallSpeed, s.bounds)
	if err != nil {
		return err
	}

	s.Player1, s.Player2, s.Ball = p1, p2, ball
	return nil
}

// FinishLoading signals that external setup (screen, audio, prefs) is
// done and the ready screen can be shown.
func (s *Session) FinishLoading() error {
	return s.State.Ready()
}

// Step runs one simulation tick and returns the tick's events. The
// caller must not call Step while paused; use FireDue instead so
// already-scheduled deferred actions keep running.
func (s *Session) Step(now time.Time, in Intents) []Event {
	s.events = s.events[:0]
	s.now = now
	s.Timing.Advance(now, s.bounds.Width())
	s.sched.Fire(now)

	switch s.State.Current {
	case PhaseReady:
		if in.Start {
			if err := s.State.Start(); err == nil {
				s.emit(EventStarted)
				s.launchFromRight()
			}
		}
	case PhasePlay:
		s.stepPlay(in)
	}
	return s.events
}

// FireDue runs only the due deferred actions. This is the paused-tick
// path: pausing cancels next-frame simulation, not pending timers.
func (s *Session) FireDue(now time.Time) []Event {
	s.events = s.events[:0]
	s.now = now
	s.sched.Fire(now)
	return s.events
}

func (s *Session) stepPlay(in Intents) {
	if s.State.CheckWin(s.Player1, s.Player2) {
		s.emit(EventWin)
		return
	}

	s.movePaddles(in)

	if in.Relaunch && !s.Ball.Launched {
		s.launchFromRight()
	}

	// Wall bounce happens before the ball advances, so a ball clamped
	// to an edge flips once and moves away next.
	if (s.Ball.AtTop() && s.Ball.DirY < 0) || (s.Ball.AtBottom() && s.Ball.DirY > 0) {
		s.Ball.BounceVertical()
		s.emit(EventWallBounce)
	}

	if s.Ball.Launched {
		if hit := s.Ball.CollisionsWith([]*Paddle{s.Player1, s.Player2}); hit != nil {
			s.paddleHit(hit)
		} else if s.Ball.AtLeft() {
			s.scoreFor(s.Player1)
			if !in.SecondPlayer {
				s.sched.After(s.now, RelaunchDelay, s.launchFromRight)
			}
			s.sched.After(s.now, ResetDelay, s.resetSession)
		} else if s.Ball.AtRight() {
			// No auto relaunch on this side; player 1 serves again
			// by hand. Kept as-is from the original rules.
			s.scoreFor(s.Player2)
		}
	}

	_ = s.Ball.Move(s.Timing.Scale)
}

func (s *Session) movePaddles(in Intents) {
	p1Scale := s.Timing.Scale
	if in.P1Analog {
		p1Scale = 1
	}
	_ = s.Player1.Move(0, in.P1Axis, p1Scale)

	p2Axis := in.P2Axis
	if !in.SecondPlayer {
		p2Axis = s.AI.Axis(s.Ball, s.Player2)
	}
	_ = s.Player2.Move(0, p2Axis, s.Timing.Scale)
}

// paddleHit reverses the ball away from the struck paddle and speeds
// it up. A left-paddle hit also stops the rally and schedules a full
// session reset, as in the original rules.
func (s *Session) paddleHit(p *Paddle) {
	s.emit(EventPaddleHit)
	if p.Owner == OwnerPlayer1 {
		s.Ball.DirX = -1
		s.Ball.Speed += hitSpeedupPlayer1
		return
	}
	s.Ball.DirX = 1
	s.Ball.Speed += hitSpeedupPlayer2
	s.Ball.Stop()
	s.sched.After(s.now, ResetDelay, s.resetSession)
}

// scoreFor awards exactly one point, resets the ball speed to its
// configured base and stops the ball. The win check runs on the same
// tick as the score.
func (s *Session) scoreFor(p *Paddle) {
	p.AddPoint()
	s.emit(EventScore)
	s.Ball.Speed = s.settings.BallSpeed
	s.Ball.Stop()
	if s.State.CheckWin(s.Player1, s.Player2) {
		s.emit(EventWin)
	}
}

// launchFromRight serves the ball from the right paddle toward the
// left side. Serving is a no-op outside of play, so a timer that
// outlives its rally fizzles instead of corrupting state.
func (s *Session) launchFromRight() {
	if s.State.Current != PhasePlay {
		return
	}
	s.launchBall(-1)
}

func (s *Session) launchBall(dirX int) {
	if dirX == 0 {
		s.logf("ball launch ignored: zero horizontal direction")
		return
	}
	p := s.Player1
	s.Ball.MoveTo(p.X-s.Ball.Width, p.CenterY-s.Ball.Height/2)
	if s.Ball.Launch(dirX, p.Width) {
		s.emit(EventLaunch)
	}
}

// resetSession is the full reload: fresh entities, zeroed scores,
// phase back through loading to ready. The persisted mute preference
// survives.
func (s *Session) resetSession() {
	muted := s.State.Muted
	s.sched.Clear()
	if err := s.rebuild(); err != nil {
		s.logf("session reset failed: %v", err)
		return
	}
	s.State = NewStateMachine(s.settings.WinScore)
	s.State.Muted = muted
	_ = s.State.Ready()
	s.emit(EventReset)
}

// Reconfigure atomically swaps in a new settings bundle and resets the
// session. Live edits never hot-patch a running session.
func (s *Session) Reconfigure(settings *config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	s.AI = ComputerOpponent{Difficulty: settings.Difficulty}
	s.resetSession()
	return nil
}

// TogglePause flips the pause flag. Resuming rebases the frame clock
// so the first post-resume tick applies no catch-up movement.
func (s *Session) TogglePause() bool {
	paused := s.State.TogglePause()
	if !paused {
		s.Timing.Rebase()
	}
	return paused
}

// ToggleMute flips the mute flag; persistence is the caller's concern.
func (s *Session) ToggleMute() bool {
	return s.State.ToggleMute()
}

// PendingEvents returns how many deferred actions are scheduled.
func (s *Session) PendingEvents() int {
	return s.sched.Pending()
}

// Settings returns the current read-only settings bundle.
func (s *Session) Settings() *config.Settings {
	return s.settings
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
