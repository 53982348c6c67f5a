package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/score"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// Stdout is the game screen, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, settings.LogLevel)

	store, err := score.Open(settings.ScoreBackend, settings.ScorePath(), logger)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Store:  store,
		Logger: logger,
	})
}
