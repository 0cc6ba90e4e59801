package services

import (
	"math"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

// Action is what a visitor can do with a project in its current stage.
type Action string

const (
	ActionSponsor   Action = "sponsor"
	ActionArchitect Action = "architect"
	ActionVote      Action = "vote"
)

// ActionFor returns the stage's action, or "" for stages without one.
func ActionFor(stage models.Stage) Action {
	switch stage {
	case models.StageSponsorship:
		return ActionSponsor
	case models.StageConcept:
		return ActionArchitect
	case models.StageVoting:
		return ActionVote
	}
	return ""
}

// StageLabelKey returns the message key naming a stage. Unknown stages use
// the stage value itself, which the resolver echoes back.
func StageLabelKey(stage models.Stage) string {
	switch stage {
	case models.StageSponsorship:
		return "navSponsorship"
	case models.StageConcept:
		return "navConcept"
	case models.StageVoting:
		return "navVoting"
	}
	return string(stage)
}

// GridTitleKey returns the message key for the project grid heading.
func GridTitleKey(stage models.Stage) string {
	switch stage {
	case models.StageSponsorship:
		return "gridSponsorship"
	case models.StageConcept:
		return "gridConcept"
	case models.StageVoting:
		return "gridVoting"
	}
	return StageLabelKey(stage)
}

// DocumentView is a resolved document link.
type DocumentView struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// VoteOptionView is a resolved voting option.
type VoteOptionView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Votes string `json:"votes"`
	Image string `json:"image"`
}

// ProjectView is a project resolved for one language.
type ProjectView struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Location         string           `json:"location"`
	Description      string           `json:"description"`
	Problem          string           `json:"problem,omitempty"`
	Goal             string           `json:"goal,omitempty"`
	Stage            models.Stage     `json:"stage"`
	StageLabelKey    string           `json:"-"`
	Action           Action           `json:"action,omitempty"`
	Image            string           `json:"image"`
	Gallery          []string         `json:"gallery"`
	HasFunding       bool             `json:"has_funding"`
	Budget           string           `json:"budget,omitempty"`
	HasRaised        bool             `json:"has_raised"`
	Raised           string           `json:"raised,omitempty"`
	ProgressPercent  int              `json:"progress_percent,omitempty"`
	HasVoting        bool             `json:"has_voting"`
	TotalVotes       string           `json:"total_votes,omitempty"`
	VoteOptions      []VoteOptionView `json:"vote_options,omitempty"`
	Documents        []DocumentView   `json:"documents,omitempty"`
	PresentationLink string           `json:"presentation_link,omitempty"`
}

// Localize resolves every display field of p for lang, falling back to the
// primary language per field. Funding is only consulted for sponsorship
// projects and voting only for voting projects.
func Localize(p *models.Project, lang, primary i18n.Language) ProjectView {
	v := ProjectView{
		ID:               p.ID,
		Title:            p.Title.Get(lang, primary),
		Location:         p.Location.Get(lang, primary),
		Description:      p.Description.Get(lang, primary),
		Problem:          p.Problem.Get(lang, primary),
		Goal:             p.Goal.Get(lang, primary),
		Stage:            p.Stage,
		StageLabelKey:    StageLabelKey(p.Stage),
		Action:           ActionFor(p.Stage),
		Image:            p.Image,
		Gallery:          p.Images(),
		PresentationLink: p.PresentationLink,
	}

	if p.Stage == models.StageSponsorship && p.Funding != nil {
		v.HasFunding = true
		v.Budget = i18n.FormatCurrency(p.Funding.Budget, lang)
		if p.Funding.Raised != nil {
			v.HasRaised = true
			v.Raised = i18n.FormatCurrency(*p.Funding.Raised, lang)
			v.ProgressPercent = progress(*p.Funding.Raised, p.Funding.Budget)
		}
	}

	if p.Stage == models.StageVoting && p.Voting != nil {
		v.HasVoting = true
		v.TotalVotes = i18n.FormatCount(p.Voting.TotalVotes, lang)
		for _, o := range p.Voting.Options {
			v.VoteOptions = append(v.VoteOptions, VoteOptionView{
				ID:    o.ID,
				Name:  o.Name.Get(lang, primary),
				Votes: i18n.FormatCount(o.Votes, lang),
				Image: o.Image,
			})
		}
	}

	for _, d := range p.Documents {
		if d.Link == "" {
			continue
		}
		v.Documents = append(v.Documents, DocumentView{
			Name: d.Name.Get(lang, primary),
			Link: d.Link,
		})
	}

	return v
}

// LocalizeAll resolves a slice of projects, keeping order.
func LocalizeAll(projects []models.Project, lang, primary i18n.Language) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for i := range projects {
		out = append(out, Localize(&projects[i], lang, primary))
	}
	return out
}

// progress returns raised/budget as a whole percent capped at 100.
func progress(raised, budget int64) int {
	if budget <= 0 || raised <= 0 {
		return 0
	}
	pct := math.Round(float64(raised) / float64(budget) * 100)
	if pct > 100 {
		return 100
	}
	return int(pct)
}
