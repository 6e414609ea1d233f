package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vrcsync/internal/config"
	"vrcsync/internal/playback"
)

const sessionFixture = `2026.03.14 15:09:20 Log        -  [Behaviour] OnPlayerJoined friend
2026.03.14 15:09:26 Log        -  [Video Playback] Attempting to resolve URL 'https://www.youtube.com/watch?v=abc123'
2026.03.14 15:09:27 Log        -  [Video Playback] URL 'https://www.youtube.com/watch?v=abc123' resolved to 'https://r4.googlevideo.com/videoplayback?dur=180.0&id=x'
2026.03.14 15:09:28 Log        -  [AVProVideo] Opening https://r4.googlevideo.com/videoplayback?dur=180.0&id=x (offset 0)
2026.03.14 15:09:40 Log        -  random world chatter
2026.03.14 15:10:00 Log        -  [USharpVideo] Send Event _OnPause
`

func runReplay(t *testing.T, fixture string) playback.StateView {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.txt")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := playback.NewStore()
	done, err := StartWatcher(context.Background(), store, config.Config{ReplayPath: path})
	if err != nil {
		t.Fatalf("StartWatcher returned error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("replay did not finish")
	}
	return store.Snapshot(0)
}

func TestReplay_ReachesDeterministicTerminalState(t *testing.T) {
	first := runReplay(t, sessionFixture)
	second := runReplay(t, sessionFixture)

	if first.Status != playback.StatusPaused {
		t.Fatalf("Status = %v, want %v", first.Status, playback.StatusPaused)
	}
	if first.VideoID != "abc123" {
		t.Fatalf("VideoID = %q, want abc123", first.VideoID)
	}
	if first.DurationSec == nil || *first.DurationSec != 180 {
		t.Fatalf("DurationSec = %v, want 180", first.DurationSec)
	}

	// Paused state is frozen, so two runs agree on everything except the
	// position accumulated during the paced replay itself.
	if first.Status != second.Status || first.VideoID != second.VideoID {
		t.Fatalf("replay not reproducible: %+v vs %+v", first, second)
	}
}

func TestReplay_StopResetsToIdle(t *testing.T) {
	fixture := sessionFixture + "2026.03.14 15:11:00 Log        -  [USharpVideo] Send Event _OnStop\n"

	view := runReplay(t, fixture)
	if view.Status != playback.StatusIdle {
		t.Fatalf("Status = %v, want %v", view.Status, playback.StatusIdle)
	}
	if view.VideoID != "" || view.Playing {
		t.Fatalf("state not reset: %+v", view)
	}
}

func TestStartWatcher_MissingReplayFileErrors(t *testing.T) {
	_, err := StartWatcher(context.Background(), playback.NewStore(),
		config.Config{ReplayPath: filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatal("StartWatcher returned nil error for missing replay file")
	}
}
