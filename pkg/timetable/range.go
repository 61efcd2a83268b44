package timetable

import (
	"time"

	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/session"
)

// aroundDayRadius is the number of days shown on each side of the anchor in
// the around-day view.
const aroundDayRadius = 10

// ResolveRange maps a view type and anchor date to the inclusive [start, end]
// date range to display. It is total: every input yields start <= end.
func ResolveRange(viewType session.ViewType, anchor time.Time) (start, end time.Time) {
	anchor = utils.DateOf(anchor)
	switch viewType {
	case session.ViewAroundDay:
		return anchor.AddDate(0, 0, -aroundDayRadius), anchor.AddDate(0, 0, aroundDayRadius)
	case session.ViewWeek:
		return weekRange(anchor)
	case session.ViewMonth:
		return monthRange(anchor)
	default:
		return anchor, anchor
	}
}

// weekRange returns Monday through Sunday of the ISO week containing anchor.
func weekRange(anchor time.Time) (time.Time, time.Time) {
	wd := int(anchor.Weekday())
	if wd == 0 { // Sunday is 7 in ISO numbering
		wd = 7
	}
	monday := anchor.AddDate(0, 0, -(wd - 1))
	return monday, monday.AddDate(0, 0, 6)
}

// monthRange returns the first and last day of anchor's month. The last day
// is found by stepping from the 28th past the month boundary and backing up
// by the overshoot, which is correct for every month length including leap
// Februaries.
func monthRange(anchor time.Time) (time.Time, time.Time) {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	pivot := time.Date(anchor.Year(), anchor.Month(), 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 4)
	last := pivot.AddDate(0, 0, -pivot.Day())
	return first, last
}
