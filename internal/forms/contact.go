package forms

import (
	"sync"
	"time"

	"meryerevan.am/internal/clock"
)

// ContactType selects the contact form variant.
type ContactType string

const (
	ContactSponsor   ContactType = "sponsor"
	ContactArchitect ContactType = "architect"
	ContactVote      ContactType = "vote"
)

// ParseContactType maps a raw value to a ContactType, defaulting to sponsor.
func ParseContactType(v string) ContactType {
	switch ContactType(v) {
	case ContactArchitect:
		return ContactArchitect
	case ContactVote:
		return ContactVote
	}
	return ContactSponsor
}

// ContactModal is the contact form, optionally bound to a project.
type ContactModal struct {
	*Modal

	mu        sync.Mutex
	projectID string
	typ       ContactType
}

// NewContactModal creates a closed contact modal.
func NewContactModal(c clock.Clock, closeDelay time.Duration, onSubmit SubmitHook) *ContactModal {
	return &ContactModal{Modal: NewModal(KindContact, c, closeDelay, onSubmit)}
}

// OpenFor opens the form for a project ("" for none) and variant.
func (c *ContactModal) OpenFor(projectID string, typ ContactType) {
	c.mu.Lock()
	c.projectID = projectID
	c.typ = typ
	c.mu.Unlock()
	c.Modal.Open()
}

// Submit attaches the bound project and variant to f before validating.
func (c *ContactModal) Submit(f ContactForm) error {
	c.mu.Lock()
	f.Project = c.projectID
	f.Type = string(c.typ)
	c.mu.Unlock()
	return c.Modal.Submit(f)
}

// ProjectID returns the bound project id.
func (c *ContactModal) ProjectID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectID
}

// Type returns the form variant.
func (c *ContactModal) Type() ContactType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typ
}
