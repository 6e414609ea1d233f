// Package logsource resolves which VRChat log file to tail.
//
// Resolution prefers an explicit file, then an explicit directory, then
// the platform default directory. Directory mode selects the newest
// output_log_*.txt and is re-run by the tailer on every reconciliation,
// so a VRChat restart (which starts a new log file) switches the tail
// target automatically.
//
// A missing directory or an empty one is reported as ErrNoLogFound. It is
// never fatal: VRChat may simply not be running yet, and the tailer
// retries on its poll interval.
package logsource
