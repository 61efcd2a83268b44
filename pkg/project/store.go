package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/trep/trep/internal/utils"
)

// Store holds the project list in creation order and persists it to a JSON
// file.
type Store struct {
	projects []Project
}

func NewStore() *Store {
	return &Store{}
}

// Add creates a project with a fresh ID and appends it.
func (s *Store) Add(name, description string, startDate time.Time) Project {
	p := Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		StartDate:   utils.DateOf(startDate),
	}
	s.projects = append(s.projects, p)
	return p
}

// All returns the projects in creation order.
func (s *Store) All() []Project {
	return s.projects
}

// Find returns the project with the given ID.
func (s *Store) Find(id string) (Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Remove deletes the project with the given ID and reports whether it
// existed.
func (s *Store) Remove(id string) bool {
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	log.Warnf("project not removed, no project with id %s", id)
	return false
}

type projectJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
}

// SaveToFile writes the project list to path as a JSON array.
func (s *Store) SaveToFile(path string) error {
	out := make([]projectJSON, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, projectJSON{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate.Format(utils.DateFormat),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize projects: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write project file %s: %w", path, err)
	}
	return nil
}

// LoadFromFile reads a project file written by SaveToFile. Like the record
// store, the load is all-or-nothing.
func (s *Store) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read project file %s: %w", path, err)
	}
	var raw []projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not parse project file %s: %w", path, err)
	}
	projects := make([]Project, 0, len(raw))
	for _, wire := range raw {
		startDate, err := utils.ParseDate(wire.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date for project %s in %s: %w", wire.ID, path, err)
		}
		projects = append(projects, Project{
			ID:          wire.ID,
			Name:        wire.Name,
			Description: wire.Description,
			StartDate:   utils.DateOf(startDate),
		})
	}
	s.projects = projects
	log.Infof("Loaded %d projects from %s", len(projects), path)
	return nil
}
