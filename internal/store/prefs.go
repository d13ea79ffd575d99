// Package store persists the player's preferences between sessions.
// The only preference today is the mute flag, keyed by a session
// identifier derived from the player name.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
)

const appDir = "termpong"

// Prefs is the persisted preference bundle.
type Prefs struct {
	Muted bool `json:"muted"`
}

// SessionID derives a stable identifier from the player name, so each
// profile keeps its own preferences.
func SessionID(playerName string) string {
	h := fnv.New32a()
	h.Write([]byte(playerName))
	return fmt.Sprintf("%08x", h.Sum32())
}

func prefsPath(playerName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir, SessionID(playerName)+".json"), nil
}

// Load reads the preferences for the given player. A missing file is
// not an error; it returns the zero value.
func Load(playerName string) (Prefs, error) {
	var p Prefs

	path, err := prefsPath(playerName)
	if err != nil {
		return p, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("corrupt prefs file %s: %w", path, err)
	}
	return p, nil
}

// Save writes the preferences for the given player, creating the
// config directory if needed.
func Save(playerName string, p Prefs) error {
	path, err := prefsPath(playerName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
