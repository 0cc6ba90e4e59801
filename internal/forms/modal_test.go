package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meryerevan.am/internal/clock"
)

func newSuggestion(c clock.Clock, hook SubmitHook) *Modal {
	return NewModal(KindSuggestion, c, 2500*time.Millisecond, hook)
}

func TestModalLifecycle(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	var submitted []map[string]string
	m := newSuggestion(c, func(kind Kind, fields map[string]string) {
		assert.Equal(t, KindSuggestion, kind)
		submitted = append(submitted, fields)
	})

	assert.Equal(t, Closed, m.State())
	m.Open()
	assert.Equal(t, Viewing, m.State())

	require.NoError(t, m.Submit(NewSuggestionForm(" Bench ", "Cascade", "More shade")))
	assert.Equal(t, Submitted, m.State())
	require.Len(t, submitted, 1)
	assert.Equal(t, "Bench", submitted[0]["title"])

	c.Advance(2 * time.Second)
	assert.Equal(t, Submitted, m.State(), "still showing confirmation before the delay")

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, Closed, m.State())
	assert.Empty(t, m.Fields(), "fields are cleared on auto-close")
}

func TestModalIncompleteStaysViewing(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	calls := 0
	m := newSuggestion(c, func(Kind, map[string]string) { calls++ })
	m.Open()

	err := m.Submit(NewSuggestionForm("Bench", "  ", "More shade"))
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, Viewing, m.State())
	assert.Equal(t, "Bench", m.Fields()["title"], "entered values are kept")
	assert.Zero(t, calls)
	assert.Zero(t, c.Pending())
}

func TestModalSubmitRequiresViewing(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	m := newSuggestion(c, nil)

	err := m.Submit(NewSuggestionForm("a", "b", "c"))
	assert.ErrorIs(t, err, ErrNotViewing)

	m.Open()
	require.NoError(t, m.Submit(NewSuggestionForm("a", "b", "c")))
	assert.ErrorIs(t, m.Submit(NewSuggestionForm("a", "b", "c")), ErrNotViewing)
}

func TestModalCancel(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	m := newSuggestion(c, nil)
	m.Open()
	require.NoError(t, m.Submit(NewSuggestionForm("a", "b", "c")))

	m.Cancel()
	assert.Equal(t, Closed, m.State())
	assert.Zero(t, c.Pending(), "pending auto-close is stopped")
}

func TestModalStaleTimerIgnoredAfterReopen(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	m := NewModal(KindContact, c, 2*time.Second, nil)
	m.Open()
	require.NoError(t, m.Submit(NewContactForm("Ani", "@ani")))

	// A timer captured before the reopen must not close the new session.
	m.mu.Lock()
	stale := m.generation
	m.mu.Unlock()

	m.Open()
	assert.Equal(t, Viewing, m.State())
	m.autoClose(stale)
	assert.Equal(t, Viewing, m.State())

	c.Advance(5 * time.Second)
	assert.Equal(t, Viewing, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "viewing", Viewing.String())
	assert.Equal(t, "submitted", Submitted.String())
}
