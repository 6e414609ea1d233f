package logsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// LogPattern matches the log files VRChat writes into its log directory.
const LogPattern = "output_log_*.txt"

// ErrNoLogFound reports that no log file could be resolved. It is
// recoverable: the caller retries on its poll timer.
var ErrNoLogFound = errors.New("no VRChat log file found")

// Resolver locates the log file to tail. Preference order: explicit file,
// then explicit directory, then the platform default directory. In
// directory mode Resolve picks the newest matching file on every call, so
// the tailer switches targets when VRChat starts a fresh log.
type Resolver struct {
	File string // explicit file path, wins when set
	Dir  string // explicit directory, searched for LogPattern
}

// Resolve returns the concrete path to tail. Errors wrap ErrNoLogFound
// when nothing could be located.
func (r Resolver) Resolve() (string, error) {
	if r.File != "" {
		info, err := os.Stat(r.File)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrNoLogFound, r.File)
		}
		return r.File, nil
	}

	dir := r.Dir
	if dir == "" {
		dir = DefaultLogDir()
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: log directory %s", ErrNoLogFound, dir)
	}
	latest, err := latestLog(dir)
	if err != nil {
		return "", err
	}
	return latest, nil
}

// latestLog returns the newest file matching LogPattern in dir. VRChat
// names logs with a sortable timestamp, so the lexicographically last
// match is the newest.
func latestLog(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, LogPattern))
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no %s in %s", ErrNoLogFound, LogPattern, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// DefaultLogDir returns the platform default VRChat log directory: the
// LocalLow app-data path on Windows, or its location inside the Steam
// Proton prefix elsewhere.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "LocalLow", "VRChat", "VRChat")
	}
	return filepath.Join(home,
		".steam", "steam", "steamapps", "compatdata", "438100",
		"pfx", "drive_c", "users", "steamuser", "AppData", "LocalLow", "VRChat", "VRChat")
}
