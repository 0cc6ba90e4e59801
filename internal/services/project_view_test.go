package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

func TestLocalizeBudgetWithoutRaised(t *testing.T) {
	s := NewProjectService(loadCatalogue(t))
	p, err := s.GetByID("1")
	require.NoError(t, err)

	v := Localize(p, i18n.English, s.Primary())
	assert.Equal(t, "Komitas Square Improvement", v.Title)
	assert.True(t, v.HasFunding)
	assert.Equal(t, "200,000,000 AMD", v.Budget)
	assert.False(t, v.HasRaised)
	assert.Empty(t, v.Raised)
	assert.Zero(t, v.ProgressPercent)
	assert.Equal(t, ActionSponsor, v.Action)
	assert.Equal(t, "navSponsorship", v.StageLabelKey)
	assert.Len(t, v.Gallery, 4)
	require.Len(t, v.Documents, 1)
	assert.Equal(t, "Concept (PDF)", v.Documents[0].Name)
}

func TestLocalizeProgress(t *testing.T) {
	s := NewProjectService(loadCatalogue(t))
	p, err := s.GetByID("2")
	require.NoError(t, err)

	v := Localize(p, i18n.English, s.Primary())
	assert.True(t, v.HasRaised)
	assert.Equal(t, "32,000,000 AMD", v.Raised)
	assert.Equal(t, 40, v.ProgressPercent)
}

func TestLocalizeFallsBackToPrimary(t *testing.T) {
	p := &models.Project{
		ID:          "x",
		Stage:       models.StageConcept,
		Title:       models.LocalizedText{i18n.Russian: "Парк", i18n.English: "Park"},
		Location:    models.LocalizedText{i18n.Russian: "Арабкир"},
		Description: models.LocalizedText{i18n.Russian: "Описание", i18n.Armenian: ""},
		Funding:     &models.Funding{Budget: 10},
	}

	v := Localize(p, i18n.Armenian, i18n.Russian)
	assert.Equal(t, "Парк", v.Title)
	assert.Equal(t, "Арабкир", v.Location)
	assert.Equal(t, "Описание", v.Description)
	assert.Empty(t, v.Problem)
	assert.False(t, v.HasFunding, "funding is only shown for sponsorship projects")
	assert.Equal(t, ActionArchitect, v.Action)
}

func TestLocalizeVoting(t *testing.T) {
	s := NewProjectService(loadCatalogue(t))
	p, err := s.GetByID("4")
	require.NoError(t, err)

	v := Localize(p, i18n.Armenian, s.Primary())
	assert.True(t, v.HasVoting)
	assert.Equal(t, ActionVote, v.Action)
	require.Len(t, v.VoteOptions, 2)
	assert.Equal(t, p.Voting.Options[0].Name[i18n.Russian], v.VoteOptions[0].Name)
}

func TestLocalizeUnknownStage(t *testing.T) {
	v := Localize(&models.Project{ID: "x", Stage: "construction"}, i18n.English, i18n.Russian)
	assert.Equal(t, Action(""), v.Action)
	assert.Equal(t, "construction", v.StageLabelKey)
	assert.Equal(t, "construction", GridTitleKey("construction"))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, progress(0, 100))
	assert.Equal(t, 0, progress(10, 0))
	assert.Equal(t, 33, progress(1, 3))
	assert.Equal(t, 100, progress(500, 100))
}
