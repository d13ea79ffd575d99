package game

import "fmt"

// Phase is the game's overall state. The transition set is fixed:
// loading → ready → play → win-player1 | win-player2. The win phases
// are terminal; only a full session reset returns to loading.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhasePlay
	PhaseWinPlayer1
	PhaseWinPlayer2
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhasePlay:
		return "play"
	case PhaseWinPlayer1:
		return "win-player1"
	case PhaseWinPlayer2:
		return "win-player2"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// StateMachine tracks the current phase plus the orthogonal paused and
// muted flags. Every phase write records the prior phase so callers can
// detect "entered this frame".
type StateMachine struct {
	Current  Phase
	Previous Phase
	Paused   bool
	Muted    bool
	WinScore int
}

// NewStateMachine starts in the loading phase.
func NewStateMachine(winScore int) *StateMachine {
	return &StateMachine{Current: PhaseLoading, Previous: PhaseLoading, WinScore: winScore}
}

func (m *StateMachine) set(next Phase) {
	m.Previous = m.Current
	m.Current = next
}

// Ready signals that external setup finished. Valid only from loading.
func (m *StateMachine) Ready() error {
	if m.Current != PhaseLoading {
		return fmt.Errorf("cannot enter ready from %s", m.Current)
	}
	m.set(PhaseReady)
	return nil
}

// Start begins play on an explicit start intent. Valid only from ready.
func (m *StateMachine) Start() error {
	if m.Current != PhaseReady {
		return fmt.Errorf("cannot start from %s", m.Current)
	}
	m.set(PhasePlay)
	return nil
}

// CheckWin moves to the matching win phase the moment a score reaches
// the win threshold. Player 1 is checked first, so a simultaneous
// threshold goes to player 1. Returns true when a transition happened.
func (m *StateMachine) CheckWin(player1, player2 *Paddle) bool {
	if m.Current != PhasePlay {
		return false
	}
	if player1.Score >= m.WinScore {
		m.set(PhaseWinPlayer1)
		return true
	}
	if player2.Score >= m.WinScore {
		m.set(PhaseWinPlayer2)
		return true
	}
	return false
}

// Reset returns to loading for a full session reset. The muted flag is
// a persisted preference and survives.
func (m *StateMachine) Reset() {
	m.set(PhaseLoading)
	m.Paused = false
}

// TogglePause flips the pause flag. It never changes the phase; the
// loop simply stops advancing the simulation while paused.
func (m *StateMachine) TogglePause() bool {
	m.Paused = !m.Paused
	return m.Paused
}

// ToggleMute flips the mute flag, independent of everything else.
func (m *StateMachine) ToggleMute() bool {
	m.Muted = !m.Muted
	return m.Muted
}

// Entered reports whether the machine moved into p on its most recent
// transition.
func (m *StateMachine) Entered(p Phase) bool {
	return m.Current == p && m.Previous != p
}
