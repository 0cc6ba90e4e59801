package services

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"meryerevan.am/internal/data"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

func loadCatalogue(t *testing.T) *models.Catalogue {
	t.Helper()
	raw, err := fs.ReadFile(data.FS, data.CataloguePath)
	require.NoError(t, err)
	var c models.Catalogue
	require.NoError(t, yaml.Unmarshal(raw, &c))
	return &c
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByStage(t *testing.T) {
	all := loadCatalogue(t).Projects
	require.Len(t, all, 6)

	assert.Equal(t, []string{"3", "5"}, ids(FilterByStage(all, models.StageConcept)))
	assert.Equal(t, []string{"1", "2"}, ids(FilterByStage(all, models.StageSponsorship)))
	assert.Empty(t, FilterByStage(all, models.Stage("construction")))
	assert.Empty(t, FilterByStage(nil, models.StageConcept))
}

func TestFilterByStageKeepsInput(t *testing.T) {
	all := loadCatalogue(t).Projects
	before := ids(all)
	FilterByStage(all, models.StageConcept)
	assert.Equal(t, before, ids(all))
}

func TestProjectServiceGetByID(t *testing.T) {
	s := NewProjectService(loadCatalogue(t))

	p, err := s.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Northern Avenue Pedestrian Zone", p.Title[i18n.English])

	_, err = s.GetByID("404")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectServiceStages(t *testing.T) {
	s := NewProjectService(loadCatalogue(t))
	assert.Equal(t, []models.Stage{models.StageSponsorship, models.StageConcept, models.StageVoting}, s.Stages())
	assert.Equal(t, 2, s.Count(models.StageVoting))

	s = NewProjectService(&models.Catalogue{
		PrimaryLanguage: i18n.Russian,
		Projects: []models.Project{
			{ID: "1", Stage: "construction"},
			{ID: "2", Stage: models.StageConcept},
		},
	})
	assert.Equal(t, []models.Stage{models.StageSponsorship, models.StageConcept, "construction"}, s.Stages())
}
