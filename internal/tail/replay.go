package tail

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultReplayInterval paces replay emission: fast enough that a full
// session log replays in seconds, slow enough to be observable.
const DefaultReplayInterval = 10 * time.Millisecond

// Replay reads a fixed log file from the beginning and emits one line per
// interval on the returned channel. Unlike Follow the sequence is finite:
// the channel closes when the file is exhausted or ctx is cancelled.
// Replay exists for deterministic testing and demoing against captured
// session logs.
func Replay(ctx context.Context, path string, interval time.Duration) (<-chan Line, error) {
	if interval <= 0 {
		interval = DefaultReplayInterval
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay log: %w", err)
	}

	out := make(chan Line, lineBuffer)
	go func() {
		defer close(out)
		defer file.Close()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			text := strings.TrimRight(scanner.Text(), "\r")
			if text == "" {
				continue
			}
			select {
			case out <- Line{Text: text, Time: time.Now()}:
			case <-ctx.Done():
				return
			}
			if !sleep(ctx, interval) {
				return
			}
		}
	}()
	return out, nil
}
