// Package playback folds parsed log events into a queryable estimate of
// what is currently playing and at what position.
//
// # State machine
//
// A single Store instance owns the PlaybackState for the process. It is
// created Idle, mutated only by Apply, and never destroyed; stop, close,
// and error events for the current video reset it back to Idle. Transition
// summary by event kind:
//
//   - Opening: new status/source/video, duration cleared unless the line
//     carried one, position anchored at (0, now)
//   - Playing: re-anchors; a position parsed from the line wins, a fresh
//     video starts at 0, and a resume keeps the previous estimate
//   - Paused: freezes the extrapolated position into the anchor
//   - Stopped/Closed: full reset to Idle (stale ids ignored)
//   - Errored: status change only, diagnostics preserved
//
// # Position estimation
//
// The anchor pair (last known true position, the clock reading when it was
// true) is always written atomically. While playing, the estimate is
// anchor + elapsed wall clock; otherwise it equals the anchor exactly.
// Estimates clamp to [0, duration] when the duration is known.
//
// Snapshot subtracts a caller-supplied fudge from the estimate (clamped at
// zero). The fudge is a deliberate bias compensating for the poll and
// network latency between computing the estimate and the browser seeking,
// not noise correction.
//
// # Concurrency
//
// Single writer, many readers: the watcher pipeline is the only caller of
// Apply, while HTTP handlers and the console view read snapshots through
// an RWMutex. Readers never observe a partially updated state.
package playback
