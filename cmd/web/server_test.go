package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/pong/internal/score"
)

func newTestServer(t *testing.T, names ...string) http.Handler {
	t.Helper()
	logger := log.New(io.Discard)
	store := score.NewFileStore(filepath.Join(t.TempDir(), "highscores.json"), logger)
	for i, name := range names {
		e := score.Entry{Name: name, Level: "Expert", BestTime: 10 * (i + 1), TotalTime: 30 * (i + 1)}
		if _, err := store.Record(context.Background(), e); err != nil {
			t.Fatal(err)
		}
	}
	return newServer(store, "pong.example.com", logger).routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHighscoresAPI(t *testing.T) {
	h := newTestServer(t, "ann", "bob", "cy")

	rec := get(t, h, "/api/highscores?n=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []score.Entry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "cy" || got[1].Name != "bob" {
		t.Errorf("entries = %+v", got)
	}
}

func TestHighscoresAPIEmpty(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/highscores")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestHighscoresAPIBadLimit(t *testing.T) {
	h := newTestServer(t)
	for _, q := range []string{"0", "-1", "ten"} {
		if rec := get(t, h, "/api/highscores?n="+q); rec.Code != http.StatusBadRequest {
			t.Errorf("n=%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestServer(t, "<ann>"), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"pong.example.com", "&lt;ann&gt;", "00:10", "00:30"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	rec = get(t, newTestServer(t), "/")
	if !strings.Contains(rec.Body.String(), "No highscores yet!") {
		t.Error("empty page missing placeholder")
	}
}
