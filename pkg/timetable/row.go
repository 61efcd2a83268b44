package timetable

import (
	"fmt"
	"time"

	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/record"
)

// RowClass is an abstract highlighting category for a row. The UI layer
// decides what color each class gets.
type RowClass int

const (
	RowNormal RowClass = iota
	RowToday
	RowWeekend
)

// RowMark flags the completeness of a day's report.
type RowMark int

const (
	// MarkNone: nothing to report, e.g. a weekend or a future day.
	MarkNone RowMark = iota
	// MarkComplete: the day has both endpoints and therefore a total.
	MarkComplete
	// MarkMissing: a past weekday without a computed total.
	MarkMissing
)

// Row is the displayable projection of one date in the visible range. It is
// rebuilt on every refresh and never stored.
type Row struct {
	Date     time.Time
	Week     int
	Weekday  string
	Came     *record.TimeOfDay
	Went     *record.TimeOfDay
	Total    time.Duration
	HasTotal bool
	Note     string
}

// ProjectRow derives the display row for a date. When present is false the
// time and note fields stay absent; a date without an entry is not an error.
func ProjectRow(day time.Time, entry record.Entry, present bool) Row {
	day = utils.DateOf(day)
	_, week := day.ISOWeek()
	row := Row{
		Date:    day,
		Week:    week,
		Weekday: day.Weekday().String(),
	}
	if !present {
		return row
	}
	row.Came = entry.Came
	row.Went = entry.Went
	row.Note = entry.Note
	row.Total, row.HasTotal = entry.Total()
	return row
}

// Classify returns the highlighting class for a date relative to today.
// Today wins over weekend.
func Classify(day, today time.Time) RowClass {
	if utils.SameDay(day, today) {
		return RowToday
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return RowWeekend
	}
	return RowNormal
}

// Mark returns the completeness marker for a row relative to today.
func (r Row) Mark(today time.Time) RowMark {
	if r.HasTotal {
		return MarkComplete
	}
	wd := r.Date.Weekday()
	if wd != time.Saturday && wd != time.Sunday && !r.Date.After(utils.DateOf(today)) {
		return MarkMissing
	}
	return MarkNone
}

// FormatDuration renders a duration as [-]H:MM:SS, matching the total
// column format.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, (total%3600)/60, total%60)
}
