package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LoadStatus says how a load went.
type LoadStatus int

const (
	Loaded  LoadStatus = iota // File parsed
	Missing                   // No file yet
	Corrupt                   // File unreadable or not a valid list
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult is the outcome of reading the score file. Entries is empty
// unless Status is Loaded.
type LoadResult struct {
	Entries []Entry
	Status  LoadStatus
	Err     error // Cause for Corrupt
}

// Load reads the score file at path. A missing or unparsable file yields an
// empty list with the matching status.
func Load(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{Status: Missing}
		}
		return LoadResult{Status: Corrupt, Err: err}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return LoadResult{Status: Corrupt, Err: err}
	}
	return LoadResult{Entries: entries, Status: Loaded}
}

// FileStore keeps the list in a JSON file. The file is opened and closed
// within each call.
type FileStore struct {
	path   string
	now    Clock
	logger *log.Logger
	mu     sync.Mutex // Serializes read-modify-write in Record
}

// Ensure FileStore satisfies Store.
var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

// load reads the file and ranks it, logging anything but a clean load.
func (s *FileStore) load() []Entry {
	res := Load(s.path)
	switch res.Status {
	case Missing:
		s.logger.Debug("score file not found, starting empty", "path", s.path)
	case Corrupt:
		s.logger.Warn("score file unreadable, starting empty", "path", s.path, "err", res.Err)
	}
	Rank(res.Entries)
	return res.Entries
}

// Record implements Store.
func (s *FileStore) Record(_ context.Context, e Entry) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Date = s.now().Format(DateLayout)
	entries := append(s.load(), e)
	Rank(entries)
	entries = First(entries, Capacity)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scores: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create score directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write score file: %w", err)
	}

	s.logger.Info("score recorded", "name", e.Name, "level", e.Level, "best", e.BestTime, "total", e.TotalTime)
	return entries, nil
}

// Top implements Store.
func (s *FileStore) Top(_ context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return First(s.load(), n), nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}
