package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/record"
)

// ViewType selects how the visible date range is derived from the anchor
// date.
type ViewType string

const (
	ViewDay       ViewType = "DAY"
	ViewWeek      ViewType = "WEEK"
	ViewMonth     ViewType = "MONTH"
	ViewAroundDay ViewType = "AROUND_DAY"
)

func (v ViewType) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewAroundDay:
		return true
	}
	return false
}

type WindowSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

const maxRecentFiles = 10

// Settings is the per-user session state persisted between runs: which view
// was open, on which date, the window geometry and the recently used record
// files. The lunch interval is kept in memory only; it is not part of the
// session file format.
type Settings struct {
	TimeViewType ViewType
	ViewDate     time.Time
	WindowSize   WindowSize
	RecentFiles  []string

	LunchFrom record.TimeOfDay
	LunchTo   record.TimeOfDay
}

// Default returns the built-in settings: month view anchored on today in a
// 300x600 window, lunch from 12:00 to 12:30.
func Default(clock utils.Clock) *Settings {
	return &Settings{
		TimeViewType: ViewMonth,
		ViewDate:     utils.Today(clock),
		WindowSize:   WindowSize{W: 300, H: 600},
		RecentFiles:  []string{},
		LunchFrom:    record.NewTimeOfDay(12, 0, 0),
		LunchTo:      record.NewTimeOfDay(12, 30, 0),
	}
}

// Load reads the session file at path and applies it field by field. A
// missing file keeps the current values and is not an error. A field that
// is missing or fails to deserialize is logged and skipped; all other
// fields still apply.
func (s *Settings) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Infof("The session file %s does not exist. No changes.", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read session file %s: %w", path, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("could not parse session file %s: %w", path, err)
	}

	loadField(fields, "time_view_type", func(raw json.RawMessage) error {
		var v ViewType
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if !v.Valid() {
			return fmt.Errorf("unknown view type %q", v)
		}
		s.TimeViewType = v
		return nil
	})

	loadField(fields, "view_date", func(raw json.RawMessage) error {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		day, err := utils.ParseDate(v)
		if err != nil {
			return err
		}
		s.ViewDate = utils.DateOf(day)
		return nil
	})

	loadField(fields, "window_size", func(raw json.RawMessage) error {
		var v WindowSize
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.WindowSize = v
		return nil
	})

	loadField(fields, "recent_files", func(raw json.RawMessage) error {
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.RecentFiles = v
		return nil
	})

	return nil
}

func loadField(fields map[string]json.RawMessage, key string, apply func(json.RawMessage) error) {
	raw, ok := fields[key]
	if !ok {
		log.Warnf("Key %s missing in session file. Skipping.", key)
		return
	}
	if err := apply(raw); err != nil {
		log.Warnf("Error while deserializing %s: %v. Skipping.", key, err)
	}
}

// Save writes the session file to path, indented with keys sorted.
func (s *Settings) Save(path string) error {
	fields := map[string]any{
		"time_view_type": s.TimeViewType,
		"view_date":      s.ViewDate.Format(utils.DateFormat),
		"window_size":    s.WindowSize,
		"recent_files":   s.RecentFiles,
	}
	data, err := json.MarshalIndent(fields, "", "    ")
	if err != nil {
		return fmt.Errorf("could not serialize session settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write session file %s: %w", path, err)
	}
	return nil
}

// AddRecentFile pushes path to the front of the recent-file list, removing
// any earlier occurrence and capping the list length.
func (s *Settings) AddRecentFile(path string) {
	files := make([]string, 0, len(s.RecentFiles)+1)
	files = append(files, path)
	for _, f := range s.RecentFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > maxRecentFiles {
		files = files[:maxRecentFiles]
	}
	s.RecentFiles = files
}

// SetLunchFrom updates the lunch start, pushing the end later if the
// interval would invert.
func (s *Settings) SetLunchFrom(t record.TimeOfDay) {
	s.LunchFrom = t
	if s.LunchTo.Before(t) {
		s.LunchTo = t
	}
}

// SetLunchTo updates the lunch end, pulling the start earlier if the
// interval would invert.
func (s *Settings) SetLunchTo(t record.TimeOfDay) {
	s.LunchTo = t
	if s.LunchFrom.After(t) {
		s.LunchFrom = t
	}
}

// LunchDuration returns the length of the lunch interval.
func (s *Settings) LunchDuration() time.Duration {
	return s.LunchTo.Sub(s.LunchFrom)
}
