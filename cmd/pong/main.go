package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/leaderboard"
	"github.com/tomz197/termpong/internal/loop"
)

func main() {
	settings, err := config.LoadSettings(config.GetEnv("PONG_CONFIG", "pong.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// The terminal is the render surface, so logs go to a file.
	logPath := config.GetEnv("PONG_LOG_FILE", filepath.Join(os.TempDir(), "pong.log"))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := config.NewLogger(logFile, config.GetEnv("PONG_LOG_LEVEL", "info"), "pong")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	opts := loop.Options{
		Logger:   logger,
		Settings: settings,
	}
	if settings.Features.Leaderboard {
		opts.Store = leaderboard.NewStore(settings.LeaderboardPath, logger)
	}

	if err := loop.Run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
