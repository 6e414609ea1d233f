package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the validated inputs the engine needs.
type Config struct {
	Host         string
	Port         int
	LogDir       string // explicit log directory; empty uses the platform default
	LogFile      string // explicit log file; wins over LogDir when set
	ReplayPath   string // when set the tailer runs in replay mode
	PollInterval time.Duration
}

const (
	defaultConfigPath   = "~/.config/vrcsync/config.toml"
	defaultHost         = "127.0.0.1"
	defaultPort         = 7957
	defaultPollInterval = 200 * time.Millisecond
)

// Addr returns the host:port bind address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientURL returns the browser UI address.
func (c Config) ClientURL() string {
	return fmt.Sprintf("http://%s/client", c.Addr())
}

// Load locates and parses the config file, falling back to defaults when
// missing. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Host:         defaultHost,
		Port:         defaultPort,
		PollInterval: defaultPollInterval,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Host           string `toml:"host"`
		Port           int    `toml:"port"`
		LogDir         string `toml:"log_dir"`
		LogFile        string `toml:"log_file"`
		Replay         string `toml:"replay"`
		PollIntervalMS int    `toml:"poll_interval_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if host := strings.TrimSpace(raw.Host); host != "" {
		cfg.Host = host
	}
	if raw.Port > 0 {
		cfg.Port = raw.Port
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if f := strings.TrimSpace(raw.LogFile); f != "" {
		cfg.LogFile = mustExpand(f)
	}
	if r := strings.TrimSpace(raw.Replay); r != "" {
		cfg.ReplayPath = mustExpand(r)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
