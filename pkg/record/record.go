package record

import (
	"fmt"
	"time"
)

// TimeFormat is the wire format for times of day in the record file.
const TimeFormat = "15:04:05"

// editFormats lists the layouts accepted when a time is typed by hand,
// most specific first.
var editFormats = []string{"15:04:05", "15:04", "15"}

// TimeOfDay is a wall-clock time within a day, at second resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

// TimeOfDayFrom extracts the wall-clock portion of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay parses the strict HH:MM:SS wire format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDayFrom(t), nil
}

// ParseTimeOfDayLenient parses user input, accepting HH:MM:SS, HH:MM and
// bare HH.
func ParseTimeOfDayLenient(s string) (TimeOfDay, error) {
	for _, layout := range editFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayFrom(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Duration returns the elapsed time since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second
}

// Sub returns t - other. The result is negative when other is later than t.
func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return t.Duration() - other.Duration()
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Duration() < other.Duration()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Duration() > other.Duration()
}

// Add shifts t by the given number of hours and minutes, carrying excess
// minutes into hours and wrapping around midnight.
func (t TimeOfDay) Add(hours, minutes int) TimeOfDay {
	total := (t.Hour+hours)*60 + t.Minute + minutes
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60, Second: t.Second}
}

// MinTime returns the earlier of a and b.
func MinTime(a, b TimeOfDay) TimeOfDay {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxTime returns the later of a and b.
func MaxTime(a, b TimeOfDay) TimeOfDay {
	if b.After(a) {
		return b
	}
	return a
}

// Entry is a single day's report: when the person came, when they went, and
// a free-text note. Came and Went are nil when not reported yet. The store
// does not force Went >= Came; records loaded from a file may carry a
// negative span until the next edit restores the order.
type Entry struct {
	Came *TimeOfDay
	Went *TimeOfDay
	Note string
}

// Total returns Went - Came. The second return value is false when either
// endpoint is missing.
func (e Entry) Total() (time.Duration, bool) {
	if e.Came == nil || e.Went == nil {
		return 0, false
	}
	return e.Went.Sub(*e.Came), true
}
