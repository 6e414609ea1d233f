package playback

import "time"

// Status is the current machine state of the synced video.
type Status int

const (
	StatusIdle Status = iota
	StatusOpening
	StatusPlaying
	StatusPaused
	StatusStopped
	StatusErrored
)

// String returns the wire name used in the /state payload.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusOpening:
		return "opening"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	case StatusErrored:
		return "errored"
	}
	return "unknown"
}

// state is the single mutable playback record. The position anchor pair
// (positionBaseSec, positionBaseAt) is always written together so
// extrapolation stays internally consistent.
type state struct {
	status   Status
	source   string
	videoID  string
	watchURL string
	duration *float64

	positionBaseSec float64
	positionBaseAt  time.Time

	lastEvent string
}

// estimateAt extrapolates the playback position at time now. Extrapolation
// only runs while playing; otherwise the anchor is exact.
func (st state) estimateAt(now time.Time) float64 {
	pos := st.positionBaseSec
	if st.status == StatusPlaying && !st.positionBaseAt.IsZero() {
		pos += now.Sub(st.positionBaseAt).Seconds()
	}
	if pos < 0 {
		pos = 0
	}
	if st.duration != nil && pos > *st.duration {
		pos = *st.duration
	}
	return pos
}

// StateView is an immutable snapshot rendered for the HTTP boundary and
// the console display. Nil pointer fields are genuinely unknown values;
// zero is a valid known duration and must stay distinguishable.
type StateView struct {
	Playing              bool
	Source               string
	VideoID              string
	WatchURL             string
	Status               Status
	EstimatedPositionSec *float64
	DurationSec          *float64
	LastEvent            string
}

// RecentEvent is one applied event kept for the console display.
type RecentEvent struct {
	At   time.Time
	Desc string
}
