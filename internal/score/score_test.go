package score

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.Local)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(filepath.Join(t.TempDir(), "highscores.json"), log.New(io.Discard))
	s.now = func() time.Time { return fixedNow }
	return s
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "scores.db"), log.New(io.Discard))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	s.now = func() time.Time { return fixedNow }
	t.Cleanup(func() { s.Close() })
	return s
}

// stores returns one of each backend for behavior shared by both.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"json":   newTestFileStore(t),
		"sqlite": newTestSQLiteStore(t),
	}
}

func bestTimes(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.BestTime
	}
	return out
}

func TestRecordOrdersByBestTime(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var got []Entry
			for _, best := range []int{10, 30, 20} {
				var err error
				got, err = s.Record(ctx, Entry{Name: "p", Level: "Beginner", BestTime: best, TotalTime: best * 2})
				if err != nil {
					t.Fatalf("Record: %v", err)
				}
			}
			if want := []int{30, 20, 10}; !slices.Equal(bestTimes(got), want) {
				t.Errorf("Record returned %v, want %v", bestTimes(got), want)
			}

			top, err := s.Top(ctx, Capacity)
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			if want := []int{30, 20, 10}; !slices.Equal(bestTimes(top), want) {
				t.Errorf("persisted order %v, want %v", bestTimes(top), want)
			}
			if top[0].Date != "2026-03-14 09:26" {
				t.Errorf("date = %q, want stamped time", top[0].Date)
			}
		})
	}
}

func TestRecordKeepsTopTen(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 12; i++ {
				if _, err := s.Record(ctx, Entry{Name: "p", Level: "Expert", BestTime: i}); err != nil {
					t.Fatalf("Record %d: %v", i, err)
				}
			}
			top, err := s.Top(ctx, 100)
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			want := []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}
			if !slices.Equal(bestTimes(top), want) {
				t.Errorf("kept %v, want %v", bestTimes(top), want)
			}
		})
	}
}

func TestTopLimitsAndTies(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"first", "second", "third"} {
				if _, err := s.Record(ctx, Entry{Name: n, Level: "Advanced", BestTime: 7}); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}
			top, err := s.Top(ctx, 2)
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			if len(top) != 2 {
				t.Fatalf("Top(2) returned %d entries", len(top))
			}
			if top[0].Name != "first" || top[1].Name != "second" {
				t.Errorf("ties reordered: %q, %q", top[0].Name, top[1].Name)
			}
		})
	}
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			top, err := s.Top(ctx, 5)
			if err != nil {
				t.Fatalf("Top: %v", err)
			}
			if len(top) != 0 {
				t.Errorf("empty store returned %d entries", len(top))
			}
		})
	}
}

func TestLoadStatuses(t *testing.T) {
	dir := t.TempDir()

	if res := Load(filepath.Join(dir, "none.json")); res.Status != Missing || len(res.Entries) != 0 {
		t.Errorf("missing file: status %v, %d entries", res.Status, len(res.Entries))
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if res := Load(corrupt); res.Status != Corrupt || res.Err == nil || len(res.Entries) != 0 {
		t.Errorf("corrupt file: status %v, err %v, %d entries", res.Status, res.Err, len(res.Entries))
	}

	good := filepath.Join(dir, "good.json")
	data, _ := json.Marshal([]Entry{{Name: "a", BestTime: 3}})
	if err := os.WriteFile(good, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if res := Load(good); res.Status != Loaded || len(res.Entries) != 1 {
		t.Errorf("good file: status %v, %d entries", res.Status, len(res.Entries))
	}
}

func TestRecordOverCorruptFile(t *testing.T) {
	s := newTestFileStore(t)
	if err := os.WriteFile(s.path, []byte("[{]"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Record(context.Background(), Entry{Name: "p", BestTime: 4})
	if err != nil {
		t.Fatalf("Record over corrupt file: %v", err)
	}
	if len(got) != 1 || got[0].BestTime != 4 {
		t.Errorf("got %+v, want the single new entry", got)
	}
	if res := Load(s.path); res.Status != Loaded {
		t.Errorf("file not rewritten cleanly: %v", res.Status)
	}
}

func TestFileFormat(t *testing.T) {
	s := newTestFileStore(t)
	if _, err := s.Record(context.Background(), Entry{Name: "Ada", Level: "Expert", BestTime: 12, TotalTime: 25}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not a JSON list: %v", err)
	}
	for _, key := range []string{"name", "level", "best_time", "total_time", "date"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("entry missing key %q", key)
		}
	}
}

func TestOpen(t *testing.T) {
	logger := log.New(io.Discard)
	dir := t.TempDir()

	s, err := Open(BackendJSON, filepath.Join(dir, "s.json"), logger)
	if err != nil {
		t.Fatalf("Open json: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("json backend returned %T", s)
	}

	s, err = Open(BackendSQLite, filepath.Join(dir, "s.db"), logger)
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("sqlite backend returned %T", s)
	}

	if _, err := Open("redis", "", logger); err == nil {
		t.Error("unknown backend accepted")
	}
}
