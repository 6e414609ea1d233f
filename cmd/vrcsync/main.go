package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vrcsync/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	host := flag.String("host", "", "bind host (default 127.0.0.1)")
	port := flag.Int("port", 0, "bind port (default 7957)")
	logDir := flag.String("log-dir", "", "VRChat log directory (default: platform location)")
	logFile := flag.String("log-file", "", "explicit log file to tail (overrides -log-dir)")
	replay := flag.String("replay", "", "replay a captured log file instead of tailing")
	pollMS := flag.Int("poll", 0, "tail poll interval in milliseconds (default 200)")
	noBrowser := flag.Bool("no-browser", false, "do not auto-open the browser UI")
	noUI := flag.Bool("no-tui", false, "do not show the console view")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Host:       *host,
		Port:       *port,
		LogDir:     *logDir,
		LogFile:    *logFile,
		ReplayPath: *replay,
		NoBrowser:  *noBrowser,
		NoUI:       *noUI,
	}
	if *pollMS > 0 {
		opts.PollInterval = time.Duration(*pollMS) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "vrcsync: %v\n", err)
		return 1
	}
	return 0
}
