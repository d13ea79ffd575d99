package store

import (
	"os"
	"path/filepath"
	"testing"
)

func setTempConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	// Darwin ignores XDG; point HOME somewhere disposable too.
	t.Setenv("HOME", dir)
}

func TestSessionID_StablePerName(t *testing.T) {
	a := SessionID("Ada")
	b := SessionID("Ada")
	if a != b {
		t.Errorf("expected stable id, got %s and %s", a, b)
	}
	if SessionID("Grace") == a {
		t.Error("expected different names to get different ids")
	}
	if len(a) != 8 {
		t.Errorf("expected 8 hex chars, got %q", a)
	}
}

func TestLoad_MissingFileIsZero(t *testing.T) {
	setTempConfigDir(t)

	p, err := Load("nobody")
	if err != nil {
		t.Fatalf("expected no error for missing prefs, got %v", err)
	}
	if p.Muted {
		t.Error("expected zero prefs for missing file")
	}
}

func TestSaveAndLoad_Roundtrip(t *testing.T) {
	setTempConfigDir(t)

	if err := Save("Ada", Prefs{Muted: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p, err := Load("Ada")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.Muted {
		t.Error("expected muted=true after roundtrip")
	}

	// A different profile is untouched.
	other, err := Load("Grace")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if other.Muted {
		t.Error("expected other profile unaffected")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	setTempConfigDir(t)

	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(base, appDir), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(base, appDir, SessionID("Ada")+".json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load("Ada"); err == nil {
		t.Error("expected error for corrupt prefs file")
	}
}
