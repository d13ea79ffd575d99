package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultWinScore     = 5
	DefaultDifficulty   = 5.0
	DefaultPaddleWidth  = 1.0
	DefaultPaddleHeight = 5.0
	DefaultPaddleSpeed  = 1.2
	DefaultBallSize     = 1.0
	DefaultBallSpeed    = 0.6
	DefaultTitle        = "TERMPONG"
	DefaultPlayer1Name  = "Player 1"
	DefaultPlayer2Name  = "Computer"

	MinDifficulty = 1.0
	MaxDifficulty = 10.0
)

// Palette holds the configured colors as hex strings. Parsing and
// fallback for bad values happen in the ui layer, not here.
type Palette struct {
	Background string
	Ball       string
	Paddle1    string
	Paddle2    string
	Text       string
	Accent     string
}

// DefaultPalette is the classic white-on-black court.
func DefaultPalette() Palette {
	return Palette{
		Background: "#000000",
		Ball:       "#ffffff",
		Paddle1:    "#4fc3f7",
		Paddle2:    "#ef5350",
		Text:       "#eeeeee",
		Accent:     "#ffd54f",
	}
}

// Settings is the read-only configuration bundle for one session.
// Live edits never mutate a bundle in place; a new bundle is built and
// swapped in through the session's Reconfigure, which resets the
// affected state.
type Settings struct {
	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	BallSize     float64
	BallSpeed    float64
	WinScore     int
	Difficulty   float64
	Player1Name  string
	Player2Name  string
	Title        string
	Palette      Palette
	Muted        bool
	LogPath      string
}

// Default returns a valid settings bundle with all defaults applied.
func Default() *Settings {
	return &Settings{
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		BallSize:     DefaultBallSize,
		BallSpeed:    DefaultBallSpeed,
		WinScore:     DefaultWinScore,
		Difficulty:   DefaultDifficulty,
		Player1Name:  DefaultPlayer1Name,
		Player2Name:  DefaultPlayer2Name,
		Title:        DefaultTitle,
		Palette:      DefaultPalette(),
	}
}

// ParseArgs parses command line arguments and returns a validated
// Settings bundle.
func ParseArgs(args []string) (*Settings, error) {
	fs := flag.NewFlagSet("termpong", flag.ContinueOnError)

	points := fs.Int("points", DefaultWinScore, "points to win (>=1)")
	difficulty := fs.Float64("difficulty", DefaultDifficulty, "computer difficulty (1-10)")
	name := fs.String("name", DefaultPlayer1Name, "player 1 display name")
	name2 := fs.String("name2", DefaultPlayer2Name, "player 2 display name")
	paddleHeight := fs.Float64("paddle-height", DefaultPaddleHeight, "paddle height in cells")
	paddleSpeed := fs.Float64("paddle-speed", DefaultPaddleSpeed, "paddle speed in cells per frame")
	ballSpeed := fs.Float64("ball-speed", DefaultBallSpeed, "base ball speed in cells per frame")
	muted := fs.Bool("muted", false, "start with sound muted")
	logPath := fs.String("log", "", "write diagnostics to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.WinScore = *points
	cfg.Difficulty = *difficulty
	cfg.Player1Name = *name
	cfg.Player2Name = *name2
	cfg.PaddleHeight = *paddleHeight
	cfg.PaddleSpeed = *paddleSpeed
	cfg.BallSpeed = *ballSpeed
	cfg.Muted = *muted
	cfg.LogPath = *logPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects malformed numeric settings at the configuration
// boundary, so NaNs never reach the movement math.
func (s *Settings) Validate() error {
	if s.WinScore < 1 {
		return fmt.Errorf("points must be at least 1, got %d", s.WinScore)
	}
	if !(s.Difficulty >= MinDifficulty && s.Difficulty <= MaxDifficulty) {
		return fmt.Errorf("difficulty must be between %v and %v, got %v", MinDifficulty, MaxDifficulty, s.Difficulty)
	}
	if !(s.PaddleWidth > 0) || !(s.PaddleHeight > 0) {
		return fmt.Errorf("paddle dimensions must be positive, got %vx%v", s.PaddleWidth, s.PaddleHeight)
	}
	if !(s.PaddleSpeed > 0) {
		return fmt.Errorf("paddle speed must be positive, got %v", s.PaddleSpeed)
	}
	if !(s.BallSize > 0) {
		return fmt.Errorf("ball size must be positive, got %v", s.BallSize)
	}
	if !(s.BallSpeed > 0) {
		return fmt.Errorf("ball speed must be positive, got %v", s.BallSpeed)
	}
	if s.Player1Name == "" || s.Player2Name == "" {
		return fmt.Errorf("player names must not be empty")
	}
	return nil
}
