package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/score"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"time": loop.FormatTime,
}).Parse(indexHTML))

// server exposes the highscore table over HTTP.
type server struct {
	store   score.Store
	sshHost string
	logger  *log.Logger
}

func newServer(store score.Store, sshHost string, logger *log.Logger) *server {
	return &server{store: store, sshHost: sshHost, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/highscores", s.handleHighscores)
	})

	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Top(r.Context(), score.Capacity)
	if err != nil {
		s.logger.Error("could not load highscores", "err", err, "request", middleware.GetReqID(r.Context()))
		http.Error(w, "could not load highscores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		SSHHost string
		Entries []score.Entry
	}{s.sshHost, entries}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *server) handleHighscores(w http.ResponseWriter, r *http.Request) {
	n := score.Capacity
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "n must be a positive integer"})
			return
		}
		n = min(v, score.Capacity)
	}

	entries, err := s.store.Top(r.Context(), n)
	if err != nil {
		s.logger.Error("could not load highscores", "err", err, "request", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not load highscores"})
		return
	}
	if entries == nil {
		entries = []score.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// writeJSON writes a JSON response with proper headers
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
