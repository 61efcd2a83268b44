package record

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/utils"
)

const seedNote = "Here is a testnote with some details about the specific date"

// Seed fills the store with synthetic came/went times for the five days
// around today, so a first run without a record file still shows a usable
// table. Came hovers around 08:30 and went around 17:00, each off by up to
// an hour. The earliest seeded day gets a demo note. Seeding does not mark
// the store dirty.
func Seed(s *Store, clock utils.Clock) {
	today := utils.Today(clock)
	for i := -2; i <= 2; i++ {
		day := today.AddDate(0, 0, i)
		came := jitter(NewTimeOfDay(8, 30, 0))
		went := jitter(NewTimeOfDay(17, 0, 0))
		note := ""
		if i == -2 {
			note = seedNote
		}
		s.entries[day] = Entry{Came: &came, Went: &went, Note: note}
	}
	log.Debugf("Seeded %d synthetic time records around %s", s.Len(), today.Format(utils.DateFormat))
}

// jitter shifts t by a random amount within plus/minus one hour.
func jitter(t TimeOfDay) TimeOfDay {
	offset := time.Duration(rand.Intn(2*3600+1)-3600) * time.Second
	total := t.Duration() + offset
	if total < 0 {
		total = 0
	}
	return NewTimeOfDay(int(total.Hours()), int(total.Minutes())%60, int(total.Seconds())%60)
}
