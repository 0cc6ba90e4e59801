package forms

import "strings"

// ContactForm is the sponsor / architect / vote contact request.
type ContactForm struct {
	Name    string `validate:"required"`
	Contact string `validate:"required"`
	Project string
	Type    string
}

// NewContactForm trims the visitor's input.
func NewContactForm(name, contact string) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
	}
}

// Fields returns the form values keyed by input name.
func (f ContactForm) Fields() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"contact": f.Contact,
		"project": f.Project,
		"type":    f.Type,
	}
}

// SuggestionForm is a visitor's idea for a new project.
type SuggestionForm struct {
	Title       string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
}

// NewSuggestionForm trims the visitor's input.
func NewSuggestionForm(title, location, description string) SuggestionForm {
	return SuggestionForm{
		Title:       strings.TrimSpace(title),
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
	}
}

// Fields returns the form values keyed by input name.
func (f SuggestionForm) Fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"location":    f.Location,
		"description": f.Description,
	}
}
