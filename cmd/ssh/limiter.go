package main

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

// sessionLimiter limits how often one client address may start a session.
// A nil limiter allows everything.
type sessionLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// newSessionLimiter allows perMinute new sessions per address. Zero or
// less disables limiting.
func newSessionLimiter(perMinute int) *sessionLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &sessionLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (l *sessionLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = lim
	return lim
}

func (l *sessionLimiter) allow(key string) bool {
	if l == nil {
		return true
	}
	return l.get(key).Allow()
}

// hostOf strips the port from a remote address.
func hostOf(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}

// rateLimitMiddleware turns away sessions from addresses over their limit.
func rateLimitMiddleware(l *sessionLimiter, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			host := hostOf(sess.RemoteAddr())
			if !l.allow(host) {
				logger.Warn("session rate limited", "remote", host, "user", sess.User())
				fmt.Fprintln(sess, "Too many sessions, try again in a minute.")
				_ = sess.Exit(1)
				return
			}
			next(sess)
		}
	}
}
