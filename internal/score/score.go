// Package score keeps the ranked high-score list. Entries are ranked by
// best time, longest first, and only the top Capacity are kept.
package score

import (
	"cmp"
	"context"
	"slices"
	"time"
)

// Capacity is the number of entries a store keeps.
const Capacity = 10

// DateLayout is the timestamp format stored with each entry.
const DateLayout = "2006-01-02 15:04"

// Entry is a single high-score record. Times are whole seconds.
type Entry struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	BestTime  int    `json:"best_time"`
	TotalTime int    `json:"total_time"`
	Date      string `json:"date"`
}

// Store persists the ranked list.
type Store interface {
	// Record stamps e with the current time, adds it to the list and
	// returns the stored top entries.
	Record(ctx context.Context, e Entry) ([]Entry, error)
	// Top returns up to n entries, best first.
	Top(ctx context.Context, n int) ([]Entry, error)
	Close() error
}

// Rank sorts entries by best time, longest first. Ties keep their order.
func Rank(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.BestTime, a.BestTime)
	})
}

// First returns at most n entries from the front of a ranked list.
func First(entries []Entry, n int) []Entry {
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// Clock returns the current time. Stores take one so tests can pin dates.
type Clock func() time.Time
