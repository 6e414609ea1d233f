package vrclog

import "time"

// Kind identifies the lifecycle transition a log line describes.
type Kind int

const (
	KindOpening Kind = iota
	KindPlaying
	KindPaused
	KindStopped
	KindClosed
	KindErrored
	// KindDurationHint carries only a duration sniffed from a URL on an
	// otherwise unrecognized line. It never changes playback status.
	KindDurationHint
)

// String returns the lowercase name used in logs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindOpening:
		return "opening"
	case KindPlaying:
		return "playing"
	case KindPaused:
		return "paused"
	case KindStopped:
		return "stopped"
	case KindClosed:
		return "closed"
	case KindErrored:
		return "errored"
	case KindDurationHint:
		return "duration-hint"
	}
	return "unknown"
}

// SourceYouTube is the only provider the parser currently recognizes.
const SourceYouTube = "youtube"

// Event is one meaningful occurrence extracted from the log. Events are
// immutable once constructed; optional fields are nil when the line does
// not carry them.
type Event struct {
	Kind    Kind
	Source  string
	VideoID string
	URL     string

	// Position is a playback position in seconds parsed directly from the
	// line (resume offset). Nil when the line carries none.
	Position *float64

	// Duration is the video duration in seconds when the line carries one.
	Duration *float64

	// RawLine is the original log text, retained for diagnostics.
	RawLine string

	// ObservedAt is when the tailing engine read the line, not a timestamp
	// parsed from the log (log timestamps are neither reliable nor always
	// present).
	ObservedAt time.Time
}
