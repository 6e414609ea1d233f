// Package vrclog defines the typed event model for VRChat video playback
// and the parser that extracts events from raw output log lines.
//
// # Overview
//
// VRChat writes an unstructured, unversioned text log. A handful of line
// shapes describe the lifecycle of the in-world video player:
//
//	[Video Playback] Attempting to resolve URL '<url>'
//	[Video Playback] URL '<url>' resolved to '<stream-url>'
//	[AVProVideo] Opening <stream-url> (offset <seconds>)
//	... Send Event _OnPause / _OnStop / _OnVideoEnd ...
//	... PlayerError / Video error ...
//
// Parse maps each of these to exactly one Event and everything else to
// nothing. The parser is pure and total: it never errors, never mutates
// shared state, and parsing the same line twice yields equal Events.
//
// # Provider filtering
//
// Only YouTube URLs are recognized. Lines naming another provider are
// dropped at this layer rather than surfaced as errors, so adding a
// provider is a change to one matcher function instead of string sniffing
// scattered across call sites.
//
// # Timestamps
//
// Events carry the time the tailing engine read the line (passed in by the
// caller), not a timestamp parsed from the log. Log timestamps are written
// in local time with second granularity and are missing on some lines, so
// they are not trusted for position math.
package vrclog
