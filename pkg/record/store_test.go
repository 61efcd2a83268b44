package record

import (
	"testing"
	"time"
)

func TestStoreNormalizesDates(t *testing.T) {
	store := NewStore()
	came := NewTimeOfDay(9, 0, 0)
	morning := time.Date(2024, 3, 15, 8, 12, 43, 0, time.Local)
	evening := time.Date(2024, 3, 15, 22, 1, 2, 0, time.UTC)

	store.Put(morning, Entry{Came: &came})

	if _, ok := store.Get(evening); !ok {
		t.Fatal("entry stored in the morning not found via an evening timestamp of the same day")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	store.Put(evening, Entry{Came: &came, Note: "updated"})
	if store.Len() != 1 {
		t.Errorf("second Put on same day created a new key, Len() = %d", store.Len())
	}
	entry, _ := store.Get(morning)
	if entry.Note != "updated" {
		t.Errorf("Note = %q, want %q", entry.Note, "updated")
	}
}

func TestStoreDatesSorted(t *testing.T) {
	store := NewStore()
	days := []time.Time{
		time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		store.Put(day, Entry{})
	}

	dates := store.Dates()
	if len(dates) != 3 {
		t.Fatalf("Dates() returned %d entries, want 3", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Errorf("Dates() not ascending at index %d: %v >= %v", i, dates[i-1], dates[i])
		}
	}
}

func TestStoreDirtyTracking(t *testing.T) {
	store := NewStore()
	if store.Dirty() {
		t.Error("new store should not be dirty")
	}
	store.Put(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Entry{Note: "x"})
	if !store.Dirty() {
		t.Error("store should be dirty after Put")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	store.Put(day, Entry{Note: "x"})
	store.Delete(day)
	if _, ok := store.Get(day); ok {
		t.Error("entry still present after Delete")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}
