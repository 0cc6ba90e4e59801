package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualRunsDueCallbacksInOrder(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	var got []string
	m.AfterFunc(2*time.Second, func() { got = append(got, "b") })
	m.AfterFunc(time.Second, func() { got = append(got, "a") })
	m.AfterFunc(5*time.Second, func() { got = append(got, "c") })

	m.Advance(3 * time.Second)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, time.Unix(3, 0), m.Now())
}

func TestManualStopPreventsCallback(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	m.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManualCallbackMaySchedule(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	count := 0
	m.AfterFunc(time.Second, func() {
		count++
		m.AfterFunc(time.Second, func() { count++ })
	})

	m.Advance(2 * time.Second)
	assert.Equal(t, 2, count)
}
