package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/services"
)

var (
	ErrEmpty  = errors.New("assistant: empty message")
	ErrBusy   = errors.New("assistant: reply in progress")
	ErrClosed = errors.New("assistant: panel is closed")
)

// Outcome classifies how a user message was answered.
type Outcome string

const (
	OutcomeReply     Outcome = "reply"
	OutcomeEmpty     Outcome = "empty"
	OutcomeError     Outcome = "error"
	OutcomeDiscarded Outcome = "discarded"
)

// Panel is the chat panel of one open project view.
type Panel struct {
	mu         sync.Mutex
	resolver   *i18n.Resolver
	responder  Responder
	onReply    func(Outcome)
	open       bool
	lang       i18n.Language
	project    services.ProjectView
	stageLabel string
	transcript Transcript
	generation uint64
	busy       bool
}

// NewPanel creates a closed panel. onReply may be nil.
func NewPanel(resolver *i18n.Resolver, responder Responder, onReply func(Outcome)) *Panel {
	return &Panel{resolver: resolver, responder: responder, onReply: onReply}
}

// Open starts a new transcript for project, seeded with a single greeting.
func (p *Panel) Open(project services.ProjectView, lang i18n.Language) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.open = true
	p.busy = false
	p.lang = lang
	p.project = project
	p.stageLabel = p.resolver.T(lang, project.StageLabelKey)
	p.transcript = Transcript{}
	p.transcript.Append(RoleAssistant, p.resolver.Format(lang, "assistantGreeting", map[string]string{"title": project.Title}))
}

// SetLanguage switches the language of later replies. Messages already in
// the transcript are kept as they are.
func (p *Panel) SetLanguage(lang i18n.Language) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || p.lang == lang {
		return
	}
	p.lang = lang
	p.stageLabel = p.resolver.T(lang, p.project.StageLabelKey)
}

// Language returns the language replies are written in.
func (p *Panel) Language() i18n.Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

// Close discards the transcript. A reply still in flight is dropped when it
// arrives.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.open = false
	p.busy = false
	p.transcript = Transcript{}
}

// IsOpen reports whether the panel has a live transcript.
func (p *Panel) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Busy reports whether a reply is pending.
func (p *Panel) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Messages returns a copy of the transcript.
func (p *Panel) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transcript.Messages()
}

// Send appends the user's message and asks the responder for a reply in the
// background. The returned channel is closed once the reply (or the fallback
// text) has been appended or discarded. ctx only carries values: the reply is
// not cancelled when ctx is.
func (p *Panel) Send(ctx context.Context, text string) (<-chan struct{}, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	if p.busy {
		p.mu.Unlock()
		return nil, ErrBusy
	}
	req := Request{
		Project:    p.project,
		StageLabel: p.stageLabel,
		History:    p.transcript.Messages(),
		Question:   text,
		Language:   p.lang,
	}
	p.transcript.Append(RoleUser, text)
	p.busy = true
	gen := p.generation
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		reply, err := p.responder.Respond(context.WithoutCancel(ctx), req)
		outcome := OutcomeReply
		switch {
		case errors.Is(err, ErrEmptyReply):
			reply = p.resolver.T(req.Language, "assistantFallback")
			outcome = OutcomeEmpty
		case err != nil:
			reply = p.resolver.T(req.Language, "assistantError")
			outcome = OutcomeError
		}

		p.mu.Lock()
		if gen == p.generation {
			p.transcript.Append(RoleAssistant, reply)
			p.busy = false
		} else {
			outcome = OutcomeDiscarded
		}
		p.mu.Unlock()

		if p.onReply != nil {
			p.onReply(outcome)
		}
	}()
	return done, nil
}
