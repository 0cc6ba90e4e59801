package forms

import (
	"sync"

	"meryerevan.am/internal/assistant"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/services"
)

// ProjectModal is the project detail view: gallery position plus the
// assistant panel.
type ProjectModal struct {
	mu        sync.Mutex
	open      bool
	projectID string
	images    int
	index     int
	options   []string
	vote      string
	panel     *assistant.Panel
}

// NewProjectModal creates a closed project modal around panel.
func NewProjectModal(panel *assistant.Panel) *ProjectModal {
	return &ProjectModal{panel: panel}
}

// Open shows project v, resets the gallery to the first image, clears the
// vote selection and seeds the assistant transcript with its greeting.
func (p *ProjectModal) Open(v services.ProjectView, lang i18n.Language) {
	p.mu.Lock()
	p.open = true
	p.projectID = v.ID
	p.images = len(v.Gallery)
	p.index = 0
	p.options = p.options[:0]
	for _, o := range v.VoteOptions {
		p.options = append(p.options, o.ID)
	}
	p.vote = ""
	p.mu.Unlock()
	p.panel.Open(v, lang)
}

// Close hides the modal and drops the transcript.
func (p *ProjectModal) Close() {
	p.mu.Lock()
	p.open = false
	p.projectID = ""
	p.images = 0
	p.index = 0
	p.options = nil
	p.vote = ""
	p.mu.Unlock()
	p.panel.Close()
}

// IsOpen reports whether a project is shown.
func (p *ProjectModal) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// ProjectID returns the shown project's id.
func (p *ProjectModal) ProjectID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projectID
}

// Index returns the selected gallery image.
func (p *ProjectModal) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Next selects the following image, wrapping around.
func (p *ProjectModal) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.images > 0 {
		p.index = (p.index + 1) % p.images
	}
}

// Prev selects the previous image, wrapping around.
func (p *ProjectModal) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.images > 0 {
		p.index = (p.index - 1 + p.images) % p.images
	}
}

// Select jumps to image i. Out-of-range values are ignored.
func (p *ProjectModal) Select(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i >= 0 && i < p.images {
		p.index = i
	}
}

// SelectVote highlights a voting option of the shown project. Unknown ids
// are ignored.
func (p *ProjectModal) SelectVote(optionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range p.options {
		if id == optionID {
			p.vote = optionID
			return
		}
	}
}

// SelectedVote returns the highlighted option id, or "".
func (p *ProjectModal) SelectedVote() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vote
}

// Panel returns the assistant panel.
func (p *ProjectModal) Panel() *assistant.Panel {
	return p.panel
}
