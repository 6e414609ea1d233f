package vrclog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Line vocabulary of the VRChat output log. Matches anywhere in the line so
// timestamp and log-level prefixes never need stripping.
var (
	attemptPattern  = regexp.MustCompile(`\[Video Playback\]\s+Attempting to resolve URL '([^']+)'`)
	resolvedPattern = regexp.MustCompile(`\[Video Playback\]\s+URL '([^']+)' resolved to '([^']+)'`)
	openingPattern  = regexp.MustCompile(`\[AVProVideo\]\s+Opening\s+(https?://\S+)(?:\s+\(offset\s+(\d+)\))?`)
	pausePattern    = regexp.MustCompile(`Send Event _OnPause|(?i:Video pause)`)
	stopPattern     = regexp.MustCompile(`Send Event _OnStop|(?i:Video stop)`)
	closedPattern   = regexp.MustCompile(`Send Event _OnVideoEnd|(?i:Video unload)`)
	errorPattern    = regexp.MustCompile(`(?i)PlayerError|Video player error|Video error|\[AVProVideo\]\s+Error`)
)

// Parse extracts an Event from one raw log line. It is pure and total:
// unrecognized or malformed lines return ok=false, never an error, because
// the upstream log format is unversioned and uncontrolled. Only YouTube
// video lines are recognized; other providers yield ok=false.
func Parse(line string, at time.Time) (Event, bool) {
	trimmed := strings.TrimRight(line, " \t\r\n")
	if trimmed == "" {
		return Event{}, false
	}

	if m := attemptPattern.FindStringSubmatch(trimmed); m != nil {
		return openingEvent(m[1], trimmed, at)
	}
	if m := resolvedPattern.FindStringSubmatch(trimmed); m != nil {
		ev, ok := openingEvent(m[1], trimmed, at)
		if !ok {
			return Event{}, false
		}
		// The resolved stream URL often carries the duration.
		if dur := durationParam(m[2]); dur != nil {
			ev.Duration = dur
		}
		return ev, true
	}
	if m := openingPattern.FindStringSubmatch(trimmed); m != nil {
		return playingEvent(m[1], m[2], trimmed, at), true
	}
	if pausePattern.MatchString(trimmed) {
		return markerEvent(KindPaused, trimmed, at), true
	}
	if stopPattern.MatchString(trimmed) {
		return markerEvent(KindStopped, trimmed, at), true
	}
	if closedPattern.MatchString(trimmed) {
		return markerEvent(KindClosed, trimmed, at), true
	}
	if errorPattern.MatchString(trimmed) {
		return markerEvent(KindErrored, trimmed, at), true
	}
	if dur := durationParam(trimmed); dur != nil {
		ev := markerEvent(KindDurationHint, trimmed, at)
		ev.Duration = dur
		return ev, true
	}
	return Event{}, false
}

// openingEvent builds an Opening event when the URL identifies a YouTube
// video; URLs from unrecognized providers are intentionally dropped here
// rather than surfaced as errors.
func openingEvent(rawURL, line string, at time.Time) (Event, bool) {
	id := ExtractYouTubeID(rawURL)
	if id == "" {
		return Event{}, false
	}
	ev := Event{
		Kind:       KindOpening,
		Source:     SourceYouTube,
		VideoID:    id,
		URL:        rawURL,
		Duration:   durationParam(rawURL),
		RawLine:    line,
		ObservedAt: at,
	}
	return ev, true
}

// playingEvent builds a Playing event from an AVPro open line. The URL is
// usually an already-resolved stream URL that no longer names the provider,
// so the video id may be empty; the state machine then applies the event to
// the current video.
func playingEvent(rawURL, offset, line string, at time.Time) Event {
	ev := Event{
		Kind:       KindPlaying,
		URL:        rawURL,
		Duration:   durationParam(rawURL),
		RawLine:    line,
		ObservedAt: at,
	}
	if id := ExtractYouTubeID(rawURL); id != "" {
		ev.Source = SourceYouTube
		ev.VideoID = id
	}
	if offset != "" {
		if off, err := strconv.ParseFloat(offset, 64); err == nil {
			ev.Position = &off
		}
	}
	return ev
}

func markerEvent(kind Kind, line string, at time.Time) Event {
	return Event{
		Kind:       kind,
		RawLine:    line,
		ObservedAt: at,
	}
}
