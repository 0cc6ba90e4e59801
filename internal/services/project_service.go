package services

import (
	"errors"
	"fmt"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles catalogue queries
type ProjectService struct {
	catalogue *models.Catalogue
}

// NewProjectService creates a new ProjectService
func NewProjectService(catalogue *models.Catalogue) *ProjectService {
	return &ProjectService{catalogue: catalogue}
}

// Primary returns the catalogue's canonical language.
func (s *ProjectService) Primary() i18n.Language {
	return s.catalogue.PrimaryLanguage
}

// GetAll returns all projects in catalogue order
func (s *ProjectService) GetAll() []models.Project {
	return s.catalogue.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.catalogue.Projects {
		if s.catalogue.Projects[i].ID == id {
			return &s.catalogue.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// ByStage returns the projects in the given stage, in catalogue order
func (s *ProjectService) ByStage(stage models.Stage) []models.Project {
	return FilterByStage(s.catalogue.Projects, stage)
}

// Count returns the number of projects in the given stage
func (s *ProjectService) Count(stage models.Stage) int {
	n := 0
	for i := range s.catalogue.Projects {
		if s.catalogue.Projects[i].Stage == stage {
			n++
		}
	}
	return n
}

// Stages returns the filter tabs: sponsorship and concept always, voting when
// the catalogue still has voting records, then any other stage in the order
// it first appears.
func (s *ProjectService) Stages() []models.Stage {
	stages := []models.Stage{models.StageSponsorship, models.StageConcept}
	seen := map[models.Stage]bool{
		models.StageSponsorship: true,
		models.StageConcept:     true,
	}
	if s.Count(models.StageVoting) > 0 {
		stages = append(stages, models.StageVoting)
		seen[models.StageVoting] = true
	}
	for i := range s.catalogue.Projects {
		st := s.catalogue.Projects[i].Stage
		if !seen[st] {
			seen[st] = true
			stages = append(stages, st)
		}
	}
	return stages
}
