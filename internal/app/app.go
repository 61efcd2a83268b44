package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/config"
	"github.com/trep/trep/internal/tui"
)

// Application wires configuration, persisted state, and the interactive
// table surface.
type Application struct {
	cfg  config.Application
	deps *Dependencies
}

// NewApplication loads the configuration from configPath and builds the
// full application, ready to Run().
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(level)
	}

	return &Application{cfg: cfg, deps: BuildDependencies(cfg)}, nil
}

// Run starts the interactive table and blocks until the user quits. On a
// clean exit the session settings are always written back; a dirty record
// store is saved as well.
func (a *Application) Run() error {
	model := tui.NewModel(a.deps.Table, a.deps.Settings, a.deps.Records, a.deps.Clock, a.cfg.Data.Records)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("table UI failed: %w", err)
	}

	if a.deps.Records.Dirty() {
		if err := a.deps.Records.SaveToFile(a.cfg.Data.Records); err != nil {
			log.Errorf("Could not save time records on shutdown: %v", err)
		} else {
			a.deps.Settings.AddRecentFile(a.cfg.Data.Records)
		}
	}

	log.Debug("Saving session settings")
	if err := a.deps.Settings.Save(a.cfg.Data.Session); err != nil {
		log.Errorf("Could not save session settings: %v", err)
	}

	return nil
}
