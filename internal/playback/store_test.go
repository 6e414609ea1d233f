package playback

import (
	"testing"
	"time"

	"vrcsync/internal/vrclog"
)

var t0 = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestStore(now time.Time) (*Store, *time.Time) {
	clock := now
	s := NewStore()
	s.now = func() time.Time { return clock }
	return s, &clock
}

func opening(id string, at time.Time) vrclog.Event {
	return vrclog.Event{
		Kind:       vrclog.KindOpening,
		Source:     vrclog.SourceYouTube,
		VideoID:    id,
		RawLine:    "opening " + id,
		ObservedAt: at,
	}
}

func playing(at time.Time) vrclog.Event {
	return vrclog.Event{Kind: vrclog.KindPlaying, RawLine: "playing", ObservedAt: at}
}

func marker(kind vrclog.Kind, id string, at time.Time) vrclog.Event {
	return vrclog.Event{Kind: kind, VideoID: id, RawLine: kind.String(), ObservedAt: at}
}

func wantPos(t *testing.T, view StateView, want float64) {
	t.Helper()
	if view.EstimatedPositionSec == nil {
		t.Fatalf("EstimatedPositionSec = nil, want %v", want)
	}
	got := *view.EstimatedPositionSec
	if diff := got - want; diff < -0.001 || diff > 0.001 {
		t.Fatalf("EstimatedPositionSec = %v, want %v", got, want)
	}
}

func TestStore_InitialStateIsIdle(t *testing.T) {
	s, _ := newTestStore(t0)

	view := s.Snapshot(DefaultFudge)
	if view.Status != StatusIdle {
		t.Fatalf("Status = %v, want %v", view.Status, StatusIdle)
	}
	if view.Playing {
		t.Fatal("Playing = true, want false")
	}
	if view.EstimatedPositionSec != nil {
		t.Fatalf("EstimatedPositionSec = %v, want nil", *view.EstimatedPositionSec)
	}
	if view.DurationSec != nil {
		t.Fatalf("DurationSec = %v, want nil", *view.DurationSec)
	}
}

func TestStore_OpeningThenPlayingExtrapolates(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))

	*clock = t0.Add(5 * time.Second)
	view := s.Snapshot(DefaultFudge)
	if view.Status != StatusPlaying {
		t.Fatalf("Status = %v, want %v", view.Status, StatusPlaying)
	}
	if view.VideoID != "abc123" {
		t.Fatalf("VideoID = %q, want abc123", view.VideoID)
	}
	if view.WatchURL != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("WatchURL = %q", view.WatchURL)
	}
	wantPos(t, view, 5-DefaultFudge)
}

func TestStore_FudgeClampsAtZero(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))

	*clock = t0.Add(time.Second)
	wantPos(t, s.Snapshot(10), 0)
}

func TestStore_NegativeFudgeTreatedAsZero(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))

	*clock = t0.Add(2 * time.Second)
	wantPos(t, s.Snapshot(-5), 2)
}

func TestStore_PausedFreezesPosition(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))
	s.Apply(marker(vrclog.KindPaused, "", t0.Add(10*time.Second)))

	*clock = t0.Add(time.Hour)
	view := s.Snapshot(0)
	if view.Status != StatusPaused {
		t.Fatalf("Status = %v, want %v", view.Status, StatusPaused)
	}
	wantPos(t, view, 10)
}

func TestStore_PlayingAfterPauseResumesFromFrozenPosition(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))
	s.Apply(marker(vrclog.KindPaused, "", t0.Add(10*time.Second)))
	s.Apply(playing(t0.Add(30 * time.Second)))

	*clock = t0.Add(33 * time.Second)
	wantPos(t, s.Snapshot(0), 13) // 10 frozen + 3 since resume
}

func TestStore_PlayingWithParsedPositionAnchorsThere(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	off := 42.0
	s.Apply(vrclog.Event{
		Kind:       vrclog.KindPlaying,
		Position:   &off,
		RawLine:    "playing at offset",
		ObservedAt: t0,
	})

	*clock = t0.Add(3 * time.Second)
	wantPos(t, s.Snapshot(0), 45)
}

func TestStore_PlayingDifferentVideoImpliesOpening(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("aaa", t0))
	s.Apply(playing(t0))

	at := t0.Add(time.Minute)
	s.Apply(vrclog.Event{
		Kind:       vrclog.KindPlaying,
		Source:     vrclog.SourceYouTube,
		VideoID:    "bbb",
		RawLine:    "playing bbb",
		ObservedAt: at,
	})

	*clock = at.Add(2 * time.Second)
	view := s.Snapshot(0)
	if view.VideoID != "bbb" {
		t.Fatalf("VideoID = %q, want bbb", view.VideoID)
	}
	wantPos(t, view, 2) // fresh video starts at zero
}

func TestStore_StopResetsToIdle(t *testing.T) {
	s, _ := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))
	s.Apply(marker(vrclog.KindStopped, "", t0.Add(time.Second)))

	view := s.Snapshot(0)
	if view.Status != StatusIdle {
		t.Fatalf("Status = %v, want %v", view.Status, StatusIdle)
	}
	if view.VideoID != "" || view.Playing {
		t.Fatalf("state not reset: %+v", view)
	}
	if view.LastEvent != "stopped" {
		t.Fatalf("LastEvent = %q, want stopped", view.LastEvent)
	}
}

func TestStore_StaleStopIgnored(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("aaa", t0))
	s.Apply(playing(t0))
	s.Apply(marker(vrclog.KindStopped, "bbb", t0.Add(time.Second)))

	*clock = t0.Add(2 * time.Second)
	view := s.Snapshot(0)
	if view.Status != StatusPlaying || view.VideoID != "aaa" {
		t.Fatalf("stale stop clobbered state: %+v", view)
	}
	if view.LastEvent == "stopped" {
		t.Fatal("stale stop recorded as last event")
	}
}

func TestStore_StaleErrorIgnored(t *testing.T) {
	s, _ := newTestStore(t0)

	s.Apply(opening("aaa", t0))
	s.Apply(marker(vrclog.KindErrored, "bbb", t0.Add(time.Second)))

	if view := s.Snapshot(0); view.Status != StatusOpening {
		t.Fatalf("Status = %v, want %v", view.Status, StatusOpening)
	}
}

func TestStore_ErrorPreservesDiagnosticsAndFreezesPosition(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))
	s.Apply(marker(vrclog.KindErrored, "", t0.Add(4*time.Second)))

	*clock = t0.Add(time.Hour)
	view := s.Snapshot(0)
	if view.Status != StatusErrored {
		t.Fatalf("Status = %v, want %v", view.Status, StatusErrored)
	}
	if view.VideoID != "abc123" {
		t.Fatalf("VideoID = %q, want abc123 preserved", view.VideoID)
	}
	wantPos(t, view, 4)
}

func TestStore_DurationClampsEstimate(t *testing.T) {
	s, clock := newTestStore(t0)

	dur := 30.0
	ev := opening("abc123", t0)
	ev.Duration = &dur
	s.Apply(ev)
	s.Apply(playing(t0))

	*clock = t0.Add(10 * time.Minute)
	view := s.Snapshot(0)
	wantPos(t, view, 30)
	if view.DurationSec == nil || *view.DurationSec != 30 {
		t.Fatalf("DurationSec = %v, want 30", view.DurationSec)
	}
}

func TestStore_DurationHintOnlyFillsUnknown(t *testing.T) {
	s, _ := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	hint := 100.0
	s.Apply(vrclog.Event{Kind: vrclog.KindDurationHint, Duration: &hint, RawLine: "hint", ObservedAt: t0})

	view := s.Snapshot(0)
	if view.DurationSec == nil || *view.DurationSec != 100 {
		t.Fatalf("DurationSec = %v, want 100", view.DurationSec)
	}
	if view.LastEvent == "hint" {
		t.Fatal("duration hint recorded as lifecycle event")
	}

	second := 999.0
	s.Apply(vrclog.Event{Kind: vrclog.KindDurationHint, Duration: &second, RawLine: "hint2", ObservedAt: t0})
	if view := s.Snapshot(0); *view.DurationSec != 100 {
		t.Fatalf("DurationSec = %v, want hint to not overwrite known value", *view.DurationSec)
	}
}

func TestStore_PositionMonotonicWhilePlaying(t *testing.T) {
	s, clock := newTestStore(t0)

	s.Apply(opening("abc123", t0))
	s.Apply(playing(t0))

	prev := -1.0
	for i := 0; i < 20; i++ {
		*clock = t0.Add(time.Duration(i) * 250 * time.Millisecond)
		view := s.Snapshot(0)
		if view.EstimatedPositionSec == nil {
			t.Fatal("EstimatedPositionSec = nil while playing")
		}
		if *view.EstimatedPositionSec < prev {
			t.Fatalf("position decreased: %v -> %v", prev, *view.EstimatedPositionSec)
		}
		prev = *view.EstimatedPositionSec
	}
}

func TestStore_RecentIsBoundedNewestFirst(t *testing.T) {
	s, _ := newTestStore(t0)

	for i := 0; i < maxRecent+5; i++ {
		s.Apply(opening("abc123", t0.Add(time.Duration(i)*time.Second)))
	}

	recent := s.Recent()
	if len(recent) != maxRecent {
		t.Fatalf("len(Recent()) = %d, want %d", len(recent), maxRecent)
	}
	if !recent[0].At.After(recent[len(recent)-1].At) {
		t.Fatalf("Recent not newest first: %v .. %v", recent[0].At, recent[len(recent)-1].At)
	}
}
