// Package forms holds the modal and form state machines of the page.
//
// Every modal moves closed -> viewing -> submitted -> closed. Opening resets
// transient input, a valid submission schedules an automatic close on the
// injected clock, and cancelling is accepted from any state.
package forms

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"meryerevan.am/internal/clock"
)

// State is a modal's lifecycle state.
type State int

const (
	Closed State = iota
	Viewing
	Submitted
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Viewing:
		return "viewing"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Kind names a modal on the page.
type Kind string

const (
	KindProject    Kind = "project"
	KindContact    Kind = "contact"
	KindSuggestion Kind = "suggestion"
	KindAbout      Kind = "about"
)

var (
	// ErrIncomplete wraps validation failures for required fields.
	ErrIncomplete = errors.New("required field missing")
	// ErrNotViewing is returned when submitting a modal that is not showing its form.
	ErrNotViewing = errors.New("modal is not accepting input")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form is a validated set of field values.
type Form interface {
	Fields() map[string]string
}

// SubmitHook observes accepted submissions. Fields are a copy.
type SubmitHook func(kind Kind, fields map[string]string)

// Modal is the generic modal state machine.
type Modal struct {
	mu         sync.Mutex
	kind       Kind
	clock      clock.Clock
	closeDelay time.Duration
	onSubmit   SubmitHook

	state      State
	fields     map[string]string
	generation uint64
	timer      clock.Timer
}

// NewModal creates a closed modal. A submitted modal closes itself after
// closeDelay on c.
func NewModal(kind Kind, c clock.Clock, closeDelay time.Duration, onSubmit SubmitHook) *Modal {
	return &Modal{
		kind:       kind,
		clock:      c,
		closeDelay: closeDelay,
		onSubmit:   onSubmit,
		fields:     map[string]string{},
	}
}

// State returns the current state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen reports whether the modal is visible.
func (m *Modal) IsOpen() bool {
	return m.State() != Closed
}

// Fields returns a copy of the current field values.
func (m *Modal) Fields() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyFields(m.fields)
}

// Open shows the modal with empty fields. Reopening an open modal starts a
// fresh lifetime.
func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimer()
	m.generation++
	m.fields = map[string]string{}
	m.state = Viewing
}

// Cancel closes the modal immediately and discards its input.
func (m *Modal) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// Submit validates f. On failure the modal stays in Viewing with the entered
// values kept for redisplay; on success it moves to Submitted and schedules
// the automatic close.
func (m *Modal) Submit(f Form) error {
	m.mu.Lock()
	if m.state != Viewing {
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotViewing, state)
	}
	m.fields = copyFields(f.Fields())
	if err := validate.Struct(f); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	m.state = Submitted
	gen := m.generation
	m.timer = m.clock.AfterFunc(m.closeDelay, func() { m.autoClose(gen) })
	hook := m.onSubmit
	fields := copyFields(m.fields)
	m.mu.Unlock()

	if hook != nil {
		hook(m.kind, fields)
	}
	return nil
}

func (m *Modal) autoClose(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation || m.state != Submitted {
		return
	}
	m.timer = nil
	m.reset()
}

// reset must be called with mu held.
func (m *Modal) reset() {
	m.stopTimer()
	m.generation++
	m.fields = map[string]string{}
	m.state = Closed
}

func (m *Modal) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func copyFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
