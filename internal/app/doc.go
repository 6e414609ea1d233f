// Package app provides the orchestration layer for vrcsync.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// preferences, creates the shared playback store, starts the HTTP server
// and the watcher pipeline, and runs the console view until shutdown.
// Business logic lives in the domain packages; app only connects them.
//
// # Data flow
//
//	StartWatcher goroutine (single writer):
//	  logsource.Resolver ──> tail.Follow ──> vrclog.Parse ──> store.Apply
//
//	Readers (any number, concurrent):
//	  HTTP /state handler ──> store.Snapshot(fudge)
//	  console view        ──> store.Snapshot / store.Recent
//
// Exactly one goroutine mutates the store; the HTTP handlers and the
// console view only read snapshots and never touch the tailing pipeline.
//
// # Lifecycle
//
// Run blocks until the signal context is cancelled, the user quits the
// console view, or, in replay mode, the fixed log is exhausted. The
// tailer checks the context every poll cycle, so shutdown never hangs on
// a sleep, and the HTTP server drains with a short timeout.
//
// # Error handling
//
// Fatal at startup: a malformed config file or an unreadable replay file.
// Everything after startup is recoverable: a missing log
// directory, rotation, and read failures are retried inside the tailer
// and surface to the user only as an idle status.
package app
