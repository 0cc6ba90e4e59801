package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"meryerevan.am/internal/i18n"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(text, genai.RoleModel)}},
	}
}

func TestGeminiResponderSendsContext(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("  It costs a lot.  ")}
	g := newGeminiResponder(fake, "", 0)

	reply, err := g.Respond(context.Background(), Request{
		Project:    sponsorView(),
		StageLabel: "Sponsorship",
		History: []Message{
			{Role: RoleAssistant, Content: "greeting"},
			{Role: RoleUser, Content: "first question"},
			{Role: RoleAssistant, Content: "first answer"},
		},
		Question: "How much?",
		Language: i18n.Russian,
	})
	require.NoError(t, err)
	assert.Equal(t, "It costs a lot.", reply)
	assert.Equal(t, DefaultModel, fake.model)

	require.Len(t, fake.contents, 3, "leading greeting is dropped")
	assert.Equal(t, "first question", fake.contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), fake.contents[1].Role)
	assert.Equal(t, "How much?", fake.contents[2].Parts[0].Text)

	system := fake.config.SystemInstruction.Parts[0].Text
	assert.Contains(t, system, `"Komitas Square"`)
	assert.Contains(t, system, "Budget: 200,000,000 AMD")
	assert.NotContains(t, system, "Raised so far")
	assert.Contains(t, system, "Answer in Russian")
}

func TestGeminiResponderEmptyReply(t *testing.T) {
	g := newGeminiResponder(&fakeGenerator{resp: textResponse("   ")}, "m", 0)
	_, err := g.Respond(context.Background(), Request{Project: sponsorView()})
	assert.ErrorIs(t, err, ErrEmptyReply)

	g = newGeminiResponder(&fakeGenerator{resp: &genai.GenerateContentResponse{}}, "m", 0)
	_, err = g.Respond(context.Background(), Request{Project: sponsorView()})
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestGeminiResponderError(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := newGeminiResponder(&fakeGenerator{err: boom}, "m", 0)
	_, err := g.Respond(context.Background(), Request{Project: sponsorView()})
	assert.ErrorIs(t, err, boom)
}

func TestNewGeminiResponderRequiresKey(t *testing.T) {
	_, err := NewGeminiResponder(context.Background(), "", "", 0)
	assert.Error(t, err)
}
