package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"vrcsync/internal/config"
	"vrcsync/internal/playback"
	"vrcsync/internal/prefs"
	"vrcsync/internal/server"
	"vrcsync/internal/ui"
)

// Options configure the vrcsync application. Non-zero override fields win
// over the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string

	Host         string
	Port         int
	LogDir       string
	LogFile      string
	ReplayPath   string
	PollInterval time.Duration

	NoBrowser bool
	NoUI      bool
}

const shutdownTimeout = 3 * time.Second

// Run boots the engine, HTTP server, and console view, blocking until the
// context is cancelled, the user quits the view, or a replay completes.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = merge(cfg, opts)

	userPrefs := prefs.Load(opts.PrefsPath)

	store := playback.NewStore()

	srv := server.New(cfg.Addr(), store)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("app: http server: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("app: shutdown: %v", err)
		}
	}()

	watcherDone, err := StartWatcher(ctx, store, cfg)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	clientURL := cfg.ClientURL()
	log.Printf("app: serving %s", clientURL)
	if !opts.NoBrowser && userPrefs.OpenBrowser {
		go openBrowser(clientURL)
	}

	if opts.NoUI {
		select {
		case <-ctx.Done():
		case <-watcherDone:
			// Replay exhausted; the live tailer only stops with ctx.
		}
		return nil
	}

	return ui.Run(ctx, ui.Options{
		Store:       store,
		ClientURL:   clientURL,
		Fudge:       userPrefs.FudgeSec,
		ThemeName:   userPrefs.Theme,
		OpenBrowser: func() { go openBrowser(clientURL) },
	})
}

func merge(cfg config.Config, opts Options) config.Config {
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.ReplayPath != "" {
		cfg.ReplayPath = opts.ReplayPath
	}
	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
	}
	return cfg
}

// openBrowser launches the default browser. Failures are logged only;
// the URL is always printed so the user can open it by hand.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("app: open browser: %v", err)
	}
}
