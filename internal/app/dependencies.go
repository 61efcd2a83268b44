package app

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/config"
	"github.com/trep/trep/internal/utils"
	"github.com/trep/trep/pkg/project"
	"github.com/trep/trep/pkg/record"
	"github.com/trep/trep/pkg/session"
	"github.com/trep/trep/pkg/timetable"
)

// Dependencies holds the shared state of the application: the record store,
// the session settings, the project list and the table core built on top of
// them.
type Dependencies struct {
	Clock    utils.Clock
	Settings *session.Settings
	Records  *record.Store
	Projects *project.Store
	Table    *timetable.Table
}

// BuildDependencies wires the stores and the table core and loads the
// persisted state. A missing session file keeps the defaults; a missing
// record file triggers seeding when enabled; a corrupt record file is
// logged and leaves the store empty rather than aborting startup.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}
	deps.Clock = &utils.SystemClock{}

	deps.Settings = session.Default(deps.Clock)
	if err := deps.Settings.Load(cfg.Data.Session); err != nil {
		log.Warnf("Could not load session settings: %v. Using defaults.", err)
	}

	deps.Records = record.NewStore()
	if _, err := os.Stat(cfg.Data.Records); os.IsNotExist(err) {
		if cfg.Data.Seed {
			record.Seed(deps.Records, deps.Clock)
		}
	} else if err := deps.Records.LoadFromFile(cfg.Data.Records); err != nil {
		log.Errorf("Could not load time records: %v. Starting with an empty store.", err)
	}

	deps.Projects = project.NewStore()
	if _, err := os.Stat(cfg.Data.Projects); err == nil {
		if err := deps.Projects.LoadFromFile(cfg.Data.Projects); err != nil {
			log.Errorf("Could not load projects: %v. Starting with an empty list.", err)
		}
	}

	deps.Table = timetable.NewTable(deps.Settings, deps.Records, deps.Clock)
	deps.Table.Refresh()

	return deps
}
