package tail

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const (
	// DefaultPollInterval balances detection latency against CPU on an
	// idle file. It must stay well under the UI fudge window.
	DefaultPollInterval = 200 * time.Millisecond

	readChunkSize = 64 * 1024
	lineBuffer    = 256
)

// Line is one complete log line with the time it was read.
type Line struct {
	Text string
	Time time.Time
}

// Source resolves the current path to tail. It is re-run on every
// reconciliation so directory-mode targets can change under us.
type Source interface {
	Resolve() (string, error)
}

// Options configure a live Follow.
type Options struct {
	PollInterval time.Duration
}

// follower holds the state of one live tail loop.
type follower struct {
	src  Source
	out  chan<- Line
	poll time.Duration

	file    *os.File
	info    os.FileInfo // identity of the open file
	path    string
	partial string // trailing bytes with no terminator yet
}

// Follow tails the source's log file and delivers each newly appended
// complete line exactly once, in file order, on the returned channel.
//
// The tail starts at the file's current end: historical content is never
// replayed. Missing files, unreadable files, truncation, rotation, and
// target switches are all handled without terminating the stream; only
// cancelling ctx stops it, which closes the channel.
func Follow(ctx context.Context, src Source, opts Options) <-chan Line {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	out := make(chan Line, lineBuffer)

	f := &follower{src: src, out: out, poll: poll}
	go func() {
		defer close(out)
		defer f.closeFile()
		f.run(ctx)
	}()
	return out
}

func (f *follower) run(ctx context.Context) {
	for {
		if f.file == nil {
			if err := f.open(); err != nil {
				log.Printf("tail: waiting for log: %v", err)
			}
		} else {
			f.poll1(ctx)
		}
		if !sleep(ctx, f.poll) {
			return
		}
	}
}

// poll1 performs one reconciliation cycle: drain new complete lines from
// the current file, then verify the file is still the right one.
func (f *follower) poll1(ctx context.Context) {
	if !f.drain(ctx) {
		return
	}
	if f.file == nil {
		// A read error mid-drain already dropped the handle.
		return
	}

	// Shrink or identity change means VRChat rotated the log. The old
	// handle is already drained, so abandoning it cannot reorder lines
	// between sources.
	pathInfo, err := os.Stat(f.path)
	switch {
	case err != nil:
		log.Printf("tail: %s unreadable, re-resolving: %v", f.path, err)
		f.closeFile()
		return
	case !os.SameFile(f.info, pathInfo):
		log.Printf("tail: %s replaced, re-resolving", f.path)
		f.closeFile()
		return
	}
	if size, serr := f.size(); serr == nil && size < f.offset() {
		log.Printf("tail: %s truncated, re-resolving", f.path)
		f.closeFile()
		return
	}

	// In directory mode a newer log may have appeared.
	if resolved, rerr := f.src.Resolve(); rerr == nil && resolved != f.path {
		log.Printf("tail: switching to %s", resolved)
		f.closeFile()
	}
}

// open resolves the source and seeks to its current end. New targets are
// always tailed from EOF, never from their beginning.
func (f *follower) open() error {
	path, err := f.src.Resolve()
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return err
	}
	f.file = file
	f.info = info
	f.path = path
	f.partial = ""
	log.Printf("tail: following %s", path)
	return nil
}

// drain reads everything appended since the last cycle and emits complete
// lines. A trailing fragment without a terminator is buffered and
// completed on a later cycle, never emitted partially. Returns false when
// ctx was cancelled mid-emit.
func (f *follower) drain(ctx context.Context) bool {
	buf := make([]byte, readChunkSize)
	for {
		n, err := f.file.Read(buf)
		if n > 0 {
			chunk := f.partial + string(buf[:n])
			lines := strings.Split(chunk, "\n")
			f.partial = lines[len(lines)-1]
			now := time.Now()
			for _, text := range lines[:len(lines)-1] {
				text = strings.TrimRight(text, "\r")
				if text == "" {
					continue
				}
				select {
				case f.out <- Line{Text: text, Time: now}:
				case <-ctx.Done():
					return false
				}
			}
		}
		if err != nil {
			// io.EOF is the idle case; anything else is retried on the
			// next cycle after a re-resolve.
			if err != io.EOF {
				log.Printf("tail: read %s: %v", f.path, err)
				f.closeFile()
			}
			return true
		}
	}
}

func (f *follower) offset() int64 {
	pos, err := f.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return pos - int64(len(f.partial))
}

func (f *follower) size() (int64, error) {
	info, err := f.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (f *follower) closeFile() {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}
	f.info = nil
	f.path = ""
	f.partial = ""
}

// sleep waits for one poll interval, returning false when ctx is done.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
