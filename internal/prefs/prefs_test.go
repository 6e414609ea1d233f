package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"vrcsync/internal/playback"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.FudgeSec != playback.DefaultFudge {
		t.Fatalf("FudgeSec = %v, want %v", p.FudgeSec, playback.DefaultFudge)
	}
	if !p.OpenBrowser {
		t.Fatal("OpenBrowser = false, want true by default")
	}
}

func TestLoad_ParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "light"
fudge_sec = 0.5
open_browser = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "light" {
		t.Fatalf("Theme = %q, want light", p.Theme)
	}
	if p.FudgeSec != 0.5 {
		t.Fatalf("FudgeSec = %v, want 0.5", p.FudgeSec)
	}
	if p.OpenBrowser {
		t.Fatal("OpenBrowser = true, want false")
	}
}

func TestLoad_MalformedFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme || p.FudgeSec != playback.DefaultFudge {
		t.Fatalf("Load of malformed file = %+v, want defaults", p)
	}
}

func TestLoad_NegativeFudgeResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`fudge_sec = -2.0`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(path); p.FudgeSec != playback.DefaultFudge {
		t.Fatalf("FudgeSec = %v, want default", p.FudgeSec)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{Theme: "light", FudgeSec: 2.5, OpenBrowser: false}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path); got != want {
		t.Fatalf("Load after Save = %+v, want %+v", got, want)
	}
}
