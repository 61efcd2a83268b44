package record

import (
	"sort"
	"time"

	"github.com/trep/trep/internal/utils"
)

// Store is the sparse mapping from calendar date to Entry. Keys are
// normalized with utils.DateOf, so at most one entry exists per day.
// Mutations flip the dirty flag until the next successful save.
type Store struct {
	entries map[time.Time]Entry
	dirty   bool
}

func NewStore() *Store {
	return &Store{entries: make(map[time.Time]Entry)}
}

// Get returns the entry for the given day, if any.
func (s *Store) Get(day time.Time) (Entry, bool) {
	entry, ok := s.entries[utils.DateOf(day)]
	return entry, ok
}

// Put stores the entry for the given day, replacing any previous one.
func (s *Store) Put(day time.Time, entry Entry) {
	s.entries[utils.DateOf(day)] = entry
	s.dirty = true
}

// Delete removes the entry for the given day.
func (s *Store) Delete(day time.Time) {
	key := utils.DateOf(day)
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.dirty = true
}

// Dates returns all days with an entry, ascending.
func (s *Store) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s.entries))
	for day := range s.entries {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Dirty reports whether the store has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// replaceAll swaps in a freshly loaded entry set and resets the dirty flag.
func (s *Store) replaceAll(entries map[time.Time]Entry) {
	s.entries = entries
	s.dirty = false
}
