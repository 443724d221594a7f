package main

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/leaderboard"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	logger := config.NewLogger(os.Stderr, config.GetEnv("PONG_LOG_LEVEL", "info"), "web")

	settings, err := config.LoadSettings(config.GetEnv("PONG_CONFIG", "pong.yaml"))
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	site := &site{
		sshHost: sshHost,
		store:   leaderboard.NewStore(settings.LeaderboardPath, logger),
		logger:  logger,
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           site.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
