// Package config loads the vrcsync configuration file.
//
// Configuration lives in ~/.config/vrcsync/config.toml and is entirely
// optional: a missing file yields working defaults (localhost:7957, the
// platform VRChat log directory, 200ms poll interval). Command-line flags
// override file values at the composition root; by the time Config
// reaches the engine it is treated as already validated.
//
// Paths in the file support ~ expansion and are made absolute. A file
// that exists but fails to parse is a startup error; silent fallback
// would hide typos.
//
// Example:
//
//	host = "127.0.0.1"
//	port = 7957
//	log_dir = "~/VRChatLogs"
//	poll_interval_ms = 200
package config
