// Package server exposes the playback estimate over local HTTP.
//
// Two routes exist: GET /state returns a JSON snapshot with an optional
// fudge query parameter, and GET /client (also /) serves the embedded
// browser page that polls /state and mirrors playback in a YouTube
// IFrame player.
//
// Handlers only read snapshots from the playback store; they never block
// on or talk to the tailing pipeline. There is no separate error channel
// at the wire boundary — failure surfaces as an idle or errored status
// plus the last raw log line in the payload.
package server
