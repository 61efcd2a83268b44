package timetable

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/record"
	"github.com/trep/trep/pkg/session"
)

// Field names an editable column of the table.
type Field string

const (
	FieldCame Field = "came"
	FieldWent Field = "went"
	FieldNote Field = "note"
)

// RangeChange is the payload delivered to rows-changed subscribers. The UI
// derives the human-readable period label from it.
type RangeChange struct {
	Anchor time.Time
	Start  time.Time
	End    time.Time
}

// Table combines the range resolver, the row projector and the record store
// into the ordered row sequence for the current view. View type and anchor
// date live on the shared session settings; the record store is owned by
// the caller and shared by reference. All methods are meant for a single
// goroutine: Refresh replaces the row slice wholesale before notifying, so
// subscribers never observe a half-built view.
type Table struct {
	settings *session.Settings
	store    *record.Store
	clock    utils.Clock

	rows  []Row
	start time.Time
	end   time.Time

	subscribers map[uint64]func(RangeChange)
	nextID      uint64
}

func NewTable(settings *session.Settings, store *record.Store, clock utils.Clock) *Table {
	return &Table{
		settings:    settings,
		store:       store,
		clock:       clock,
		subscribers: make(map[uint64]func(RangeChange)),
	}
}

// Rows returns the rows computed by the last Refresh, ascending by date.
func (t *Table) Rows() []Row {
	return t.rows
}

// Range returns the inclusive date range of the last Refresh.
func (t *Table) Range() (start, end time.Time) {
	return t.start, t.end
}

// ViewType returns the current view type.
func (t *Table) ViewType() session.ViewType {
	return t.settings.TimeViewType
}

// Anchor returns the current anchor date.
func (t *Table) Anchor() time.Time {
	return t.settings.ViewDate
}

// OnRowsChanged registers fn to be called synchronously after every
// recompute. It returns an unsubscribe function.
func (t *Table) OnRowsChanged(fn func(RangeChange)) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.subscribers[id] = fn
	return func() {
		delete(t.subscribers, id)
	}
}

// Refresh recomputes the visible range and rebuilds one row per date in it,
// then notifies subscribers.
func (t *Table) Refresh() {
	start, end := ResolveRange(t.settings.TimeViewType, t.settings.ViewDate)

	days := int(end.Sub(start).Hours()/24) + 1
	rows := make([]Row, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		entry, ok := t.store.Get(day)
		rows = append(rows, ProjectRow(day, entry, ok))
	}

	t.rows = rows
	t.start = start
	t.end = end

	change := RangeChange{Anchor: t.settings.ViewDate, Start: start, End: end}
	for _, fn := range t.subscribers {
		fn(change)
	}
}

// SetViewType switches the view. Setting the current type again is a no-op
// and fires no notification.
func (t *Table) SetViewType(viewType session.ViewType) {
	if viewType == t.settings.TimeViewType {
		return
	}
	t.settings.TimeViewType = viewType
	t.Refresh()
}

// JumpToToday re-anchors the view on the current day.
func (t *Table) JumpToToday() {
	t.settings.ViewDate = utils.Today(t.clock)
	t.Refresh()
}

// Page moves the view one period forward or backward. Month and week views
// page by a full calendar period computed from the resolved range, so
// adjacent months of different lengths line up exactly; day and around-day
// views move by a single day.
func (t *Table) Page(forward bool) {
	anchor := utils.DateOf(t.settings.ViewDate)
	switch t.settings.TimeViewType {
	case session.ViewMonth:
		months := 1
		if !forward {
			months = -1
		}
		start, _ := monthRange(anchor)
		anchor = start.AddDate(0, months, 0)
	case session.ViewWeek:
		days := 7
		if !forward {
			days = -7
		}
		anchor = anchor.AddDate(0, 0, days)
	default:
		days := 1
		if !forward {
			days = -1
		}
		anchor = anchor.AddDate(0, 0, days)
	}
	t.settings.ViewDate = anchor
	t.Refresh()
}

// Edit commits a raw edited value into the store for the given date,
// creating the entry when absent. Time values accept HH:MM:SS, HH:MM and
// bare HH. Committing came pulls went up to at least came; committing went
// pushes came down to at most went. So departure >= arrival always holds
// right after a single-field edit.
func (t *Table) Edit(day time.Time, field Field, value string) error {
	entry, _ := t.store.Get(day)

	switch field {
	case FieldCame:
		came, err := record.ParseTimeOfDayLenient(value)
		if err != nil {
			return err
		}
		entry.Came = &came
		if entry.Went != nil {
			went := record.MaxTime(*entry.Went, came)
			entry.Went = &went
		}
	case FieldWent:
		went, err := record.ParseTimeOfDayLenient(value)
		if err != nil {
			return err
		}
		entry.Went = &went
		if entry.Came != nil {
			came := record.MinTime(*entry.Came, went)
			entry.Came = &came
		}
	case FieldNote:
		entry.Note = value
	default:
		log.Errorf("Unhandled field %s", field)
		return fmt.Errorf("unhandled field %q", field)
	}

	t.store.Put(day, entry)
	t.Refresh()
	return nil
}

// RecordPresenceNow widens today's came/went window to include the current
// time, creating today's entry when absent. Repeated calls only ever expand
// the window.
func (t *Table) RecordPresenceNow() {
	now := t.clock.Now()
	day := utils.DateOf(now)
	tod := record.TimeOfDayFrom(now)

	entry, _ := t.store.Get(day)
	if entry.Came == nil {
		entry.Came = &tod
	} else {
		came := record.MinTime(*entry.Came, tod)
		entry.Came = &came
	}
	if entry.Went == nil {
		entry.Went = &tod
	} else {
		went := record.MaxTime(*entry.Went, tod)
		entry.Went = &went
	}

	t.store.Put(day, entry)
	t.Refresh()
}

// PeriodLabel returns the human-readable label for the current range.
func (t *Table) PeriodLabel() string {
	return PeriodLabel(t.settings.TimeViewType, t.settings.ViewDate, t.start, t.end)
}
