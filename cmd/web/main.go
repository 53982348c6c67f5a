package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/score"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)

	store, err := score.Open(settings.ScoreBackend, settings.ScorePath(), logger)
	if err != nil {
		logger.Fatal("failed to open score store", "err", err)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(settings.WebHost, settings.WebPort),
		Handler:           newServer(store, settings.SSHDisplayHost, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
