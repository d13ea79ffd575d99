package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

const (
	BallChar   = '█' // █
	PaddleChar = '█' // █
	MutedGlyph = "[muted]"
	PausedText = "PAUSED"
)

// Renderer draws the game screens from session snapshots. It owns no
// state beyond the screen and theme; the core only hands it strings,
// booleans and geometry.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a renderer with the given screen and theme.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws whichever screen matches the snapshot's phase.
func (r *Renderer) Render(snap game.Snapshot) {
	switch snap.Phase {
	case game.PhaseLoading:
		r.renderLoading(snap)
	case game.PhaseReady:
		r.renderReady(snap)
	case game.PhasePlay:
		r.renderPlay(snap)
	case game.PhaseWinPlayer1:
		r.renderWin(snap, snap.Player1.Name)
	case game.PhaseWinPlayer2:
		r.renderWin(snap, snap.Player2.Name)
	}
}

func (r *Renderer) renderLoading(snap game.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.centerText(w/2, h/2, "loading...", r.theme.Dim)
	r.screen.Show()
}

func (r *Renderer) renderReady(snap game.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.centerText(w/2, h/2-3, snap.Title, r.theme.Accent)
	r.centerText(w/2, h/2, "[ PRESS ENTER TO START ]", r.theme.Text)
	r.centerText(w/2, h/2+2,
		fmt.Sprintf("first to %d points wins", snap.WinScore), r.theme.Dim)
	r.centerText(w/2, h/2+4,
		"arrows/mouse: move   w/s: player 2   space: serve   p: pause   m: mute   q: quit",
		r.theme.Dim)

	r.renderStatusBar(snap)
	r.screen.Show()
}

func (r *Renderer) renderPlay(snap game.Snapshot) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	top := int(snap.Court.Top)
	bottom := int(snap.Court.Bottom)

	// Center dashed line
	centerX := int(snap.Court.Left+snap.Court.Width()/2) - 1
	for y := top; y < bottom; y += 2 {
		r.screen.SetCell(centerX, y, r.theme.Dim, '┆')
	}

	r.drawPaddle(snap.Player2.EntityView, r.theme.Paddle2)
	r.drawPaddle(snap.Player1.EntityView, r.theme.Paddle1)

	r.screen.SetCell(int(snap.Ball.X), int(snap.Ball.Y), r.theme.Ball, BallChar)

	// Scores sit either side of the center line
	left := fmt.Sprintf("%s %d", snap.Player2.Name, snap.Player2.Score)
	right := fmt.Sprintf("%d %s", snap.Player1.Score, snap.Player1.Name)
	r.screen.DrawText(centerX-len(left)-2, top, left, r.theme.Paddle2)
	r.screen.DrawText(centerX+3, top, right, r.theme.Paddle1)

	if snap.Paused {
		r.centerText(w/2, (top+bottom)/2, PausedText, r.theme.Accent)
	}

	r.renderStatusBar(snap)
	r.screen.Show()
}

func (r *Renderer) renderWin(snap game.Snapshot, winner string) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.centerText(w/2, h/2-2, fmt.Sprintf("%s WINS", winner), r.theme.Accent)
	r.centerText(w/2, h/2,
		fmt.Sprintf("%s %d : %d %s",
			snap.Player2.Name, snap.Player2.Score,
			snap.Player1.Score, snap.Player1.Name),
		r.theme.Text)
	r.centerText(w/2, h/2+2, "a new game starts shortly", r.theme.Dim)

	r.renderStatusBar(snap)
	r.screen.Show()
}

// renderStatusBar draws the mute glyph and quit hint on the last row.
func (r *Renderer) renderStatusBar(snap game.Snapshot) {
	w, h := r.screen.Size()
	if snap.Muted {
		r.screen.DrawText(1, h-1, MutedGlyph, r.theme.Dim)
	}
	hint := "q:quit p:pause m:mute"
	r.screen.DrawText(w-len(hint)-1, h-1, hint, r.theme.Dim)
}

func (r *Renderer) drawPaddle(v game.EntityView, style tcell.Style) {
	r.screen.FillRect(int(v.X), int(v.Y), max(int(v.Width), 1), max(int(v.Height), 1), style, PaddleChar)
}

func (r *Renderer) centerText(cx, y int, text string, style tcell.Style) {
	r.screen.DrawText(cx-len(text)/2, y, text, style)
}
