package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/record"
)

var testClock = &utils.MockClock{FixedNow: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)}

func TestDefaults(t *testing.T) {
	s := Default(testClock)
	assert.Equal(t, ViewMonth, s.TimeViewType)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), s.ViewDate)
	assert.Equal(t, WindowSize{W: 300, H: 600}, s.WindowSize)
	assert.Empty(t, s.RecentFiles)
	assert.Equal(t, 30*time.Minute, s.LunchDuration())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := Default(testClock)
	s.TimeViewType = ViewWeek
	s.ViewDate = time.Date(2023, 11, 6, 0, 0, 0, 0, time.UTC)
	s.WindowSize = WindowSize{W: 800, H: 480}
	s.AddRecentFile("/home/me/trep.db.json")
	require.NoError(t, s.Save(path))

	loaded := Default(testClock)
	require.NoError(t, loaded.Load(path))

	assert.Equal(t, ViewWeek, loaded.TimeViewType)
	assert.Equal(t, s.ViewDate, loaded.ViewDate)
	assert.Equal(t, s.WindowSize, loaded.WindowSize)
	assert.Equal(t, []string{"/home/me/trep.db.json"}, loaded.RecentFiles)
}

func TestSaveFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, Default(testClock).Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "time_view_type")
	assert.Contains(t, raw, "view_date")
	assert.Contains(t, raw, "window_size")
	assert.Contains(t, raw, "recent_files")
	assert.NotContains(t, raw, "lunch_interval", "lunch interval is not part of the session file")
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	s := Default(testClock)
	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "nope.json")))
	assert.Equal(t, ViewMonth, s.TimeViewType)
}

func TestLoadSkipsCorruptFieldsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	content := `{
        "time_view_type": "WEEK",
        "view_date": "not a date",
        "window_size": {"w": 640, "h": 400}
    }`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := Default(testClock)
	require.NoError(t, s.Load(path))

	assert.Equal(t, ViewWeek, s.TimeViewType, "valid field applies")
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), s.ViewDate, "corrupt field keeps default")
	assert.Equal(t, WindowSize{W: 640, H: 400}, s.WindowSize, "fields after a corrupt one still apply")
	assert.Empty(t, s.RecentFiles, "missing field keeps default")
}

func TestLoadRejectsUnknownViewType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	content := `{"time_view_type": "FORTNIGHT"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := Default(testClock)
	require.NoError(t, s.Load(path))
	assert.Equal(t, ViewMonth, s.TimeViewType)
}

func TestLoadUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o600))

	s := Default(testClock)
	assert.Error(t, s.Load(path))
}

func TestAddRecentFile(t *testing.T) {
	s := Default(testClock)
	s.AddRecentFile("a.json")
	s.AddRecentFile("b.json")
	s.AddRecentFile("a.json")
	assert.Equal(t, []string{"a.json", "b.json"}, s.RecentFiles, "re-adding moves to front without duplicating")

	for i := 0; i < 20; i++ {
		s.AddRecentFile(filepath.Join("dir", "file", string(rune('a'+i))+".json"))
	}
	assert.Len(t, s.RecentFiles, maxRecentFiles)
}

func TestLunchIntervalClamping(t *testing.T) {
	s := Default(testClock)

	s.SetLunchFrom(record.NewTimeOfDay(13, 0, 0))
	assert.Equal(t, record.NewTimeOfDay(13, 0, 0), s.LunchTo, "moving from past to pushes to")

	s.SetLunchTo(record.NewTimeOfDay(12, 15, 0))
	assert.Equal(t, record.NewTimeOfDay(12, 15, 0), s.LunchFrom, "moving to before from pulls from")

	s.SetLunchTo(record.NewTimeOfDay(13, 0, 0))
	assert.Equal(t, 45*time.Minute, s.LunchDuration())
}
