package record

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/utils"
)

// entryJSON is the wire shape of a single day: times as HH:MM:SS strings,
// note always present (empty when unset).
type entryJSON struct {
	Came *string `json:"came"`
	Went *string `json:"went"`
	Note string  `json:"note"`
}

// SaveToFile serializes the store to path as a JSON object keyed by
// YYYY-MM-DD strings. The in-memory entries are copied into a throwaway
// wire structure first and are never touched. The write goes through a
// temp file and rename so a failed save cannot truncate an existing file.
// A successful save clears the dirty flag.
func (s *Store) SaveToFile(path string) error {
	out := make(map[string]entryJSON, len(s.entries))
	for day, entry := range s.entries {
		var came, went *string
		if entry.Came != nil {
			v := entry.Came.String()
			came = &v
		}
		if entry.Went != nil {
			v := entry.Went.String()
			went = &v
		}
		out[day.Format(utils.DateFormat)] = entryJSON{Came: came, Went: went, Note: entry.Note}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize time records: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("could not write time records to %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not replace time record file %s: %w", path, err)
	}

	log.Infof("Saved %d time records to %s", len(out), path)
	s.dirty = false
	return nil
}

// LoadFromFile reads a record file written by SaveToFile. The load is
// all-or-nothing: any malformed date or time aborts with an error and the
// previously held entries stay in place.
func (s *Store) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read time record file %s: %w", path, err)
	}

	var raw map[string]entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not parse time record file %s: %w", path, err)
	}

	entries := make(map[time.Time]Entry, len(raw))
	for dateStr, wire := range raw {
		day, err := utils.ParseDate(dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q in %s: %w", dateStr, path, err)
		}
		var entry Entry
		if wire.Came != nil {
			came, err := ParseTimeOfDay(*wire.Came)
			if err != nil {
				return fmt.Errorf("invalid came time for %s in %s: %w", dateStr, path, err)
			}
			entry.Came = &came
		}
		if wire.Went != nil {
			went, err := ParseTimeOfDay(*wire.Went)
			if err != nil {
				return fmt.Errorf("invalid went time for %s in %s: %w", dateStr, path, err)
			}
			entry.Went = &went
		}
		entry.Note = wire.Note
		entries[utils.DateOf(day)] = entry
	}

	s.replaceAll(entries)
	log.Infof("Loaded %d time records from %s", len(entries), path)
	return nil
}
