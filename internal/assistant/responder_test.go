package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meryerevan.am/internal/clock"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/services"
)

func testResolver() *i18n.Resolver {
	return i18n.NewResolver(map[i18n.Language]i18n.Table{
		i18n.English: {
			"assistantGreeting":      "Hi! Ask me about {title}.",
			"assistantCannedIntro":   "About {title}:",
			"assistantCannedContext": "Context:",
			"assistantCannedOutro":   "Anything else?",
			"assistantFallback":      "Sorry, I could not generate a response.",
			"assistantError":         "Sorry, there was an error processing your request. Please try again.",
			"location":               "Location",
			"stage":                  "Stage",
			"budget":                 "Budget",
			"raised":                 "Raised",
			"navSponsorship":         "Sponsorship",
		},
	}, i18n.English)
}

func sponsorView() services.ProjectView {
	return services.ProjectView{
		ID:            "1",
		Title:         "Komitas Square",
		Location:      "Kentron",
		StageLabelKey: "navSponsorship",
		HasFunding:    true,
		Budget:        "200,000,000 AMD",
	}
}

func TestCannedReplyOmitsAbsentAmounts(t *testing.T) {
	reply := CannedReply(testResolver(), Request{
		Project:    sponsorView(),
		StageLabel: "Sponsorship",
		Language:   i18n.English,
	})

	assert.True(t, strings.HasPrefix(reply, "About Komitas Square:"))
	assert.Contains(t, reply, "- Location: Kentron")
	assert.Contains(t, reply, "- Stage: Sponsorship")
	assert.Contains(t, reply, "- Budget: 200,000,000 AMD")
	assert.NotContains(t, reply, "Raised")
	assert.True(t, strings.HasSuffix(reply, "Anything else?"))
}

func TestCannedResponderWaitsForClock(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	r := NewCannedResponder(testResolver(), c, time.Second)

	type result struct {
		reply string
		err   error
	}
	out := make(chan result, 1)
	go func() {
		reply, err := r.Respond(context.Background(), Request{Project: sponsorView(), Language: i18n.English})
		out <- result{reply, err}
	}()

	require.Eventually(t, func() bool { return c.Pending() == 1 }, time.Second, time.Millisecond)
	select {
	case <-out:
		t.Fatal("replied before the delay elapsed")
	default:
	}

	c.Advance(time.Second)
	res := <-out
	require.NoError(t, res.err)
	assert.Contains(t, res.reply, "Komitas Square")
}

func TestCannedResponderCancelled(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	r := NewCannedResponder(testResolver(), c, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Respond(ctx, Request{Project: sponsorView()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, c.Pending())
}
