package app

import (
	"context"
	"log"

	"vrcsync/internal/config"
	"vrcsync/internal/logsource"
	"vrcsync/internal/playback"
	"vrcsync/internal/tail"
	"vrcsync/internal/vrclog"
)

// StartWatcher launches the tail → parse → apply pipeline in a background
// goroutine and returns a channel that closes when the pipeline ends. The
// pipeline goroutine is the sole mutator of the store.
//
// Live mode runs until ctx is cancelled; replay mode additionally ends
// when the fixed log is exhausted. A replay file that cannot be opened is
// the only startup error.
func StartWatcher(ctx context.Context, store *playback.Store, cfg config.Config) (<-chan struct{}, error) {
	var lines <-chan tail.Line
	if cfg.ReplayPath != "" {
		replayed, err := tail.Replay(ctx, cfg.ReplayPath, 0)
		if err != nil {
			return nil, err
		}
		log.Printf("watcher: replaying %s", cfg.ReplayPath)
		lines = replayed
	} else {
		src := logsource.Resolver{File: cfg.LogFile, Dir: cfg.LogDir}
		lines = tail.Follow(ctx, src, tail.Options{PollInterval: cfg.PollInterval})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		apply(lines, store)
	}()
	return done, nil
}

// apply drains the line stream in order. Lines the parser does not
// recognize are dropped silently; that is the normal case for almost
// every line VRChat writes.
func apply(lines <-chan tail.Line, store *playback.Store) {
	for line := range lines {
		ev, ok := vrclog.Parse(line.Text, line.Time)
		if !ok {
			continue
		}
		log.Printf("watcher: %s event (video=%q)", ev.Kind, ev.VideoID)
		store.Apply(ev)
	}
}
