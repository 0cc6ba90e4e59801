package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"meryerevan.am/internal/clock"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/services"
)

// ErrEmptyReply is returned by a Responder that got an empty answer.
var ErrEmptyReply = errors.New("assistant: empty reply")

// Request is everything a Responder needs to answer one user message.
type Request struct {
	Project    services.ProjectView
	StageLabel string
	History    []Message
	Question   string
	Language   i18n.Language
}

// Responder answers a single user message. Implementations make exactly one
// attempt.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// CannedResponder answers with a fixed template after a simulated delay.
type CannedResponder struct {
	resolver *i18n.Resolver
	clock    clock.Clock
	delay    time.Duration
}

// NewCannedResponder creates a CannedResponder.
func NewCannedResponder(resolver *i18n.Resolver, c clock.Clock, delay time.Duration) *CannedResponder {
	return &CannedResponder{resolver: resolver, clock: c, delay: delay}
}

// Respond waits for the configured delay on the clock, then returns the
// templated reply.
func (c *CannedResponder) Respond(ctx context.Context, req Request) (string, error) {
	done := make(chan struct{})
	t := c.clock.AfterFunc(c.delay, func() { close(done) })
	select {
	case <-done:
	case <-ctx.Done():
		t.Stop()
		return "", ctx.Err()
	}
	return CannedReply(c.resolver, req), nil
}

// CannedReply renders the placeholder answer for req. Lines for absent
// budget or raised amounts are left out.
func CannedReply(r *i18n.Resolver, req Request) string {
	lang := req.Language
	p := req.Project

	var b strings.Builder
	b.WriteString(r.Format(lang, "assistantCannedIntro", map[string]string{"title": p.Title}))
	b.WriteString("\n\n")
	b.WriteString(r.T(lang, "assistantCannedContext"))
	b.WriteString("\n- ")
	b.WriteString(r.T(lang, "location"))
	b.WriteString(": ")
	b.WriteString(p.Location)
	b.WriteString("\n- ")
	b.WriteString(r.T(lang, "stage"))
	b.WriteString(": ")
	b.WriteString(req.StageLabel)
	if p.HasFunding {
		b.WriteString("\n- ")
		b.WriteString(r.T(lang, "budget"))
		b.WriteString(": ")
		b.WriteString(p.Budget)
	}
	if p.HasRaised {
		b.WriteString("\n- ")
		b.WriteString(r.T(lang, "raised"))
		b.WriteString(": ")
		b.WriteString(p.Raised)
	}
	b.WriteString("\n\n")
	b.WriteString(r.T(lang, "assistantCannedOutro"))
	return b.String()
}
