package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/input"
)

// KeyToCode maps a tcell key event to a logical input code. Arrows
// drive paddle 1, w/s drive paddle 2, space serves. Returns false for
// keys the router does not care about.
func KeyToCode(key tcell.Key, r rune) (input.Code, bool) {
	switch key {
	case tcell.KeyUp:
		return input.CodeP1Up, true
	case tcell.KeyDown:
		return input.CodeP1Down, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.CodeP2Up, true
		case 's', 'S':
			return input.CodeP2Down, true
		case ' ':
			return input.CodeRelaunch, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application.
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}

// IsStartKey returns true if the key should start/confirm.
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// IsPauseKey returns true if the key toggles pause.
func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'p' || r == 'P')
}

// IsMuteKey returns true if the key toggles mute.
func IsMuteKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'm' || r == 'M')
}
