package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"meryerevan.am/internal/i18n"
)

// Stage is the lifecycle phase of a project. It is an open set: the known
// values below get stage-specific treatment, anything else is carried through
// as-is.
type Stage string

const (
	StageSponsorship Stage = "sponsorship"
	StageConcept     Stage = "concept"
	StageVoting      Stage = "voting"
)

// KnownStages lists the stages with dedicated handling, in tab order.
var KnownStages = []Stage{StageSponsorship, StageConcept, StageVoting}

// ParseStage normalises a stage value. "fundraising" is the older name for
// sponsorship.
func ParseStage(value string) Stage {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "fundraising" {
		return StageSponsorship
	}
	return Stage(v)
}

// Known reports whether s is one of KnownStages.
func (s Stage) Known() bool {
	for _, k := range KnownStages {
		if s == k {
			return true
		}
	}
	return false
}

// UnmarshalYAML normalises stage values while decoding.
func (s *Stage) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = ParseStage(raw)
	return nil
}

// LocalizedText holds one value per language code.
type LocalizedText map[i18n.Language]string

// Get returns the value for lang, or the primary language value when lang
// has none.
func (t LocalizedText) Get(lang, primary i18n.Language) string {
	if v := strings.TrimSpace(t[lang]); v != "" {
		return t[lang]
	}
	return t[primary]
}

// Empty reports whether no language has a value.
func (t LocalizedText) Empty() bool {
	for _, v := range t {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Missing returns the languages in langs without a value.
func (t LocalizedText) Missing(langs []i18n.Language) []i18n.Language {
	var out []i18n.Language
	for _, lang := range langs {
		if strings.TrimSpace(t[lang]) == "" {
			out = append(out, lang)
		}
	}
	return out
}

// Funding is the sponsorship sub-record. Amounts are in AMD.
type Funding struct {
	Budget int64  `yaml:"budget" json:"budget"`
	Raised *int64 `yaml:"raised,omitempty" json:"raised,omitempty"`
}

// VoteOption is one design a visitor can vote for.
type VoteOption struct {
	ID    string        `yaml:"id" json:"id"`
	Name  LocalizedText `yaml:"name" json:"name"`
	Votes int64         `yaml:"votes" json:"votes"`
	Image string        `yaml:"image" json:"image"`
}

// Voting is the legacy voting sub-record.
type Voting struct {
	TotalVotes int64        `yaml:"total_votes" json:"total_votes"`
	Options    []VoteOption `yaml:"options" json:"options"`
}

// Document is an external reference attached to a project.
type Document struct {
	Name LocalizedText `yaml:"name" json:"name"`
	Link string        `yaml:"link" json:"link"`
}

// Project represents one urban-improvement project in the catalogue
type Project struct {
	ID               string        `yaml:"id" json:"id"`
	Title            LocalizedText `yaml:"title" json:"title"`
	Location         LocalizedText `yaml:"location" json:"location"`
	Description      LocalizedText `yaml:"description" json:"description"`
	Problem          LocalizedText `yaml:"problem,omitempty" json:"problem,omitempty"`
	Goal             LocalizedText `yaml:"goal,omitempty" json:"goal,omitempty"`
	Stage            Stage         `yaml:"stage" json:"stage"`
	Image            string        `yaml:"image" json:"image"`
	Gallery          []string      `yaml:"gallery" json:"gallery"`
	Funding          *Funding      `yaml:"funding,omitempty" json:"funding,omitempty"`
	Voting           *Voting       `yaml:"voting,omitempty" json:"voting,omitempty"`
	Documents        []Document    `yaml:"documents,omitempty" json:"documents,omitempty"`
	PresentationLink string        `yaml:"presentation_link,omitempty" json:"presentation_link,omitempty"`
}

// Images returns the gallery, or the cover image when the gallery is empty.
func (p *Project) Images() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Catalogue wraps the static list of projects.
type Catalogue struct {
	PrimaryLanguage i18n.Language `yaml:"primary_language" json:"primary_language"`
	Projects        []Project     `yaml:"projects" json:"projects"`
}

// Validate checks catalogue invariants. Broken invariants are returned as an
// error; incomplete translations are returned as warnings.
func (c *Catalogue) Validate(langs []i18n.Language) ([]string, error) {
	if c.PrimaryLanguage == "" {
		return nil, fmt.Errorf("catalogue: primary_language is required")
	}
	var warnings []string
	seen := make(map[string]bool, len(c.Projects))
	for i := range c.Projects {
		p := &c.Projects[i]
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("catalogue: project #%d has no id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalogue: duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Stage == "" {
			return nil, fmt.Errorf("catalogue: project %q has no stage", p.ID)
		}
		if strings.TrimSpace(p.Title[c.PrimaryLanguage]) == "" {
			return nil, fmt.Errorf("catalogue: project %q has no %s title", p.ID, c.PrimaryLanguage)
		}
		if !p.Stage.Known() {
			warnings = append(warnings, fmt.Sprintf("project %s: unknown stage %q", p.ID, p.Stage))
		}
		fields := []struct {
			name string
			text LocalizedText
		}{
			{"title", p.Title},
			{"location", p.Location},
			{"description", p.Description},
			{"problem", p.Problem},
			{"goal", p.Goal},
		}
		for _, f := range fields {
			if f.text.Empty() {
				continue
			}
			for _, lang := range f.text.Missing(langs) {
				warnings = append(warnings, fmt.Sprintf("project %s: %s missing %s", p.ID, f.name, lang))
			}
		}
	}
	return warnings, nil
}
