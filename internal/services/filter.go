package services

import "meryerevan.am/internal/models"

// DefaultStage is the filter shown on a visitor's first page load.
const DefaultStage = models.StageSponsorship

// FilterByStage returns the projects whose stage equals stage, preserving
// their relative order. The input slice is not modified.
func FilterByStage(projects []models.Project, stage models.Stage) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Stage == stage {
			out = append(out, p)
		}
	}
	return out
}
