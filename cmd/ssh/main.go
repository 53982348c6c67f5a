package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/score"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, settings.LogLevel)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSHHost,
		"port", settings.SSHPort,
		"hostKeyPath", settings.SSHHostKey,
		"workingDir", workingDir)

	// Shared by all sessions
	store, err := score.Open(settings.ScoreBackend, settings.ScorePath(), logger)
	if err != nil {
		logger.Fatal("failed to open score store", "err", err)
	}
	defer store.Close()

	limiter := newSessionLimiter(settings.SSHRatePerMinute)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			gameMiddleware(store, time.Duration(settings.SSHIdleSeconds)*time.Second, logger),
			rateLimitMiddleware(limiter, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(settings.SSHHost, settings.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown cancels session contexts, which ends running games
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

// gameMiddleware runs one game per SSH session.
func gameMiddleware(store score.Store, idleTimeout time.Duration, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("new game session",
				"user", sess.User(),
				"terminal", pty.Term,
				"width", pty.Window.Width,
				"height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			reader := bufio.NewReader(sess)
			err := loop.Run(sess.Context(), reader, sess, loop.Options{
				Store:       store,
				Logger:      logger.With("user", sess.User()),
				TermSize:    sizeTracker.getSize,
				IdleTimeout: idleTimeout,
			})
			if err != nil {
				logger.Error("game error", "user", sess.User(), "err", err)
			}

			logger.Info("session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
