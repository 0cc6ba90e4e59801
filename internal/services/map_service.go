package services

import (
	"fmt"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

// PinView is a map pin joined with its project's localized labels.
type PinView struct {
	Index     int     `json:"index"`
	ProjectID string  `json:"project_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Stage     string  `json:"stage"`
}

// MapService handles the city map section
type MapService struct {
	pins     []models.Pin
	projects *ProjectService
}

// NewMapService creates a new MapService. Pins that point at unknown projects
// are dropped and reported back so the caller can log them.
func NewMapService(cm *models.CityMap, ps *ProjectService) (*MapService, []string) {
	var dropped []string
	s := &MapService{projects: ps}
	if cm == nil {
		return s, nil
	}
	for _, pin := range cm.Pins {
		if _, err := ps.GetByID(pin.ProjectID); err != nil {
			dropped = append(dropped, pin.ProjectID)
			continue
		}
		pin.X = clampPercent(pin.X)
		pin.Y = clampPercent(pin.Y)
		s.pins = append(s.pins, pin)
	}
	return s, dropped
}

// Pins returns all pins resolved for lang
func (s *MapService) Pins(lang i18n.Language) []PinView {
	out := make([]PinView, 0, len(s.pins))
	for i, pin := range s.pins {
		p, err := s.projects.GetByID(pin.ProjectID)
		if err != nil {
			continue
		}
		primary := s.projects.Primary()
		out = append(out, PinView{
			Index:     i,
			ProjectID: pin.ProjectID,
			X:         pin.X,
			Y:         pin.Y,
			Title:     p.Title.Get(lang, primary),
			Location:  p.Location.Get(lang, primary),
			Stage:     string(p.Stage),
		})
	}
	return out
}

// ProjectAt resolves a pin click to its project
func (s *MapService) ProjectAt(index int) (*models.Project, error) {
	if index < 0 || index >= len(s.pins) {
		return nil, fmt.Errorf("pin %d: %w", index, ErrProjectNotFound)
	}
	return s.projects.GetByID(s.pins[index].ProjectID)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
