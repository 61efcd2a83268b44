package timetable

import (
	"testing"

	"github.com/trep/trep/pkg/session"
)

func TestPeriodLabel(t *testing.T) {
	anchor := day(2024, 3, 15)

	tests := []struct {
		name     string
		viewType session.ViewType
		want     string
	}{
		{name: "month", viewType: session.ViewMonth, want: "March, 2024"},
		{name: "week", viewType: session.ViewWeek, want: "Week 11, 2024"},
		{name: "day", viewType: session.ViewDay, want: "2024-03-15"},
		{name: "around day", viewType: session.ViewAroundDay, want: "2024-03-05 - 2024-03-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveRange(tt.viewType, anchor)
			if got := PeriodLabel(tt.viewType, anchor, start, end); got != tt.want {
				t.Errorf("PeriodLabel(%s) = %q, want %q", tt.viewType, got, tt.want)
			}
		})
	}
}

func TestPeriodLabelSingleDigitWeekPadded(t *testing.T) {
	anchor := day(2024, 1, 10) // ISO week 2
	start, end := ResolveRange(session.ViewWeek, anchor)
	if got := PeriodLabel(session.ViewWeek, anchor, start, end); got != "Week 02, 2024" {
		t.Errorf("PeriodLabel() = %q, want %q", got, "Week 02, 2024")
	}
}
