// Package tail incrementally reads new lines from the VRChat log.
//
// # Overview
//
// Two operating modes share one output contract: a channel of complete
// raw lines, each delivered at most once, in file order.
//
// Live mode (Follow) opens the resolved file, seeks to its current end,
// and polls for growth at a fixed short interval. Historical content is
// never replayed: only lines appended after the tail started matter for
// playback sync. Replay mode (Replay) reads a fixed file from the
// beginning at an artificial pace for deterministic testing, and is the
// only finite variant.
//
// # Failure handling
//
// Live mode never terminates on I/O trouble. Each poll cycle reconciles:
//
//   - file temporarily missing or unreadable: retry next cycle
//   - file truncated or replaced (rotation): reopen via the resolver,
//     starting at the new file's end
//   - a newer log appeared in directory mode: switch targets, again
//     starting at that file's end
//
// Reconciliation always drains the old handle before abandoning it, so
// lines from two sources never interleave. A trailing partial line is
// buffered until its terminator arrives.
//
// # Polling
//
// The poll interval trades CPU against event latency. The default of
// 200ms keeps worst-case detection lag an order of magnitude below the
// position-estimate fudge applied at the query layer. Only context
// cancellation stops the loop; every sleep is cancellable.
package tail
