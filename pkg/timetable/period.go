package timetable

import (
	"fmt"
	"time"

	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/session"
)

// PeriodLabel renders the headline for a resolved range: the month and year
// for month view, the ISO week number for week view, the anchor date for
// day view, and the explicit range otherwise.
func PeriodLabel(viewType session.ViewType, anchor, start, end time.Time) string {
	switch viewType {
	case session.ViewMonth:
		return anchor.Format("January, 2006")
	case session.ViewWeek:
		_, week := anchor.ISOWeek()
		return fmt.Sprintf("Week %02d, %s", week, anchor.Format("2006"))
	case session.ViewDay:
		return anchor.Format(utils.DateFormat)
	default:
		return fmt.Sprintf("%s - %s", start.Format(utils.DateFormat), end.Format(utils.DateFormat))
	}
}
