package playback

import (
	"fmt"
	"log"
	"sync"
	"time"

	"vrcsync/internal/vrclog"
)

// DefaultFudge compensates for the latency between computing a position
// estimate and the browser acting on it.
const DefaultFudge = 1.5

// maxRecent bounds the applied-event history kept for the console view.
const maxRecent = 8

// Store owns the playback state. Exactly one goroutine (the watcher
// pipeline) calls Apply; any number of readers call Snapshot concurrently.
type Store struct {
	mu     sync.RWMutex
	now    func() time.Time
	st     state
	recent []RecentEvent
}

// NewStore returns a store in the Idle state.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Apply folds one parsed event into the playback state. It is the sole
// mutator. No event kind is rejected; duplicates are idempotent no-ops on
// the fields they do not touch, and stop/error events naming a video that
// is not current are dropped as stale.
func (s *Store) Apply(ev vrclog.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case vrclog.KindOpening:
		s.applyOpening(ev)
	case vrclog.KindPlaying:
		s.applyPlaying(ev)
	case vrclog.KindPaused:
		s.applyPaused(ev)
	case vrclog.KindStopped, vrclog.KindClosed:
		if s.stale(ev) {
			return
		}
		s.st = state{status: StatusIdle, lastEvent: ev.RawLine}
	case vrclog.KindErrored:
		if s.stale(ev) {
			return
		}
		// videoID and lastEvent survive for diagnostics; freezing the
		// anchor pair disables extrapolation.
		s.st.status = StatusErrored
		s.anchor(s.st.estimateAt(ev.ObservedAt), ev.ObservedAt)
		s.st.lastEvent = ev.RawLine
	case vrclog.KindDurationHint:
		if s.st.videoID != "" && s.st.duration == nil && ev.Duration != nil {
			s.st.duration = ev.Duration
		}
		// Not a lifecycle transition; lastEvent stays.
		return
	default:
		s.st.lastEvent = ev.RawLine
	}
	s.remember(ev)
}

func (s *Store) applyOpening(ev vrclog.Event) {
	s.st = state{
		status:   StatusOpening,
		source:   ev.Source,
		videoID:  ev.VideoID,
		watchURL: vrclog.WatchURL(ev.VideoID),
		duration: ev.Duration,
	}
	s.anchor(0, ev.ObservedAt)
	s.st.lastEvent = ev.RawLine
}

func (s *Store) applyPlaying(ev vrclog.Event) {
	// A playing event for a different video implies an opening we missed.
	if ev.VideoID != "" && ev.VideoID != s.st.videoID {
		s.applyOpening(ev)
	}

	base := s.st.estimateAt(ev.ObservedAt)
	switch {
	case ev.Position != nil:
		base = *ev.Position
	case s.st.status == StatusIdle || s.st.status == StatusOpening:
		base = 0
	}
	s.st.status = StatusPlaying
	s.anchor(base, ev.ObservedAt)
	if ev.Duration != nil {
		s.st.duration = ev.Duration
	}
	s.st.lastEvent = ev.RawLine
}

func (s *Store) applyPaused(ev vrclog.Event) {
	// Freeze the extrapolated position at the moment of pause.
	s.anchor(s.st.estimateAt(ev.ObservedAt), ev.ObservedAt)
	if s.st.videoID != "" {
		s.st.status = StatusPaused
	}
	s.st.lastEvent = ev.RawLine
}

// stale reports whether a stop/error event names a video that is not
// current. Stale lines are common in the log and must not clobber a newer
// video's state. Events without an id always apply to the current video.
func (s *Store) stale(ev vrclog.Event) bool {
	if ev.VideoID == "" || ev.VideoID == s.st.videoID {
		return false
	}
	log.Printf("playback: ignoring stale %s event for %s (current %s)", ev.Kind, ev.VideoID, s.st.videoID)
	return true
}

// anchor updates the position anchor pair as one unit.
func (s *Store) anchor(baseSec float64, at time.Time) {
	s.st.positionBaseSec = baseSec
	s.st.positionBaseAt = at
}

func (s *Store) remember(ev vrclog.Event) {
	re := RecentEvent{At: ev.ObservedAt, Desc: fmt.Sprintf("%-8s %s", ev.Kind, ev.RawLine)}
	s.recent = append([]RecentEvent{re}, s.recent...)
	if len(s.recent) > maxRecent {
		s.recent = s.recent[:maxRecent]
	}
}

// Snapshot renders the current state with the given fudge subtracted from
// the position estimate. It never mutates state and is safe to call
// concurrently with Apply. Negative fudge values are treated as zero.
func (s *Store) Snapshot(fudge float64) StateView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := StateView{
		Playing:   s.st.videoID != "" && s.st.status != StatusIdle,
		Source:    s.st.source,
		VideoID:   s.st.videoID,
		WatchURL:  s.st.watchURL,
		Status:    s.st.status,
		LastEvent: s.st.lastEvent,
	}
	if s.st.duration != nil {
		d := *s.st.duration
		view.DurationSec = &d
	}
	if s.st.videoID != "" {
		pos := s.st.estimateAt(s.now())
		if fudge > 0 {
			pos -= fudge
		}
		if pos < 0 {
			pos = 0
		}
		view.EstimatedPositionSec = &pos
	}
	return view
}

// Recent returns the most recently applied events, newest first.
func (s *Store) Recent() []RecentEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RecentEvent, len(s.recent))
	copy(out, s.recent)
	return out
}
