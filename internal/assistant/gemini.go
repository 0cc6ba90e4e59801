package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"meryerevan.am/internal/i18n"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiResponder answers through the Gemini API. The API key stays on the
// server; browsers only ever talk to this service.
type GeminiResponder struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGeminiResponder creates a GeminiResponder for apiKey.
func NewGeminiResponder(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiResponder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiResponder(client.Models, model, timeout), nil
}

func newGeminiResponder(models contentGenerator, model string, timeout time.Duration) *GeminiResponder {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiResponder{models: models, model: model, timeout: timeout}
}

// Respond sends the project context, the prior transcript and the question
// in a single request.
func (g *GeminiResponder) Respond(ctx context.Context, req Request) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(req), genai.RoleUser),
	}
	resp, err := g.models.GenerateContent(ctx, g.model, conversation(req), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyReply
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func systemPrompt(req Request) string {
	p := req.Project
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant helping users understand the urban project %q in %s, Yerevan.\n\n", p.Title, p.Location)
	b.WriteString("Project details:\n")
	fmt.Fprintf(&b, "- Description: %s\n", p.Description)
	fmt.Fprintf(&b, "- Stage: %s\n", req.StageLabel)
	if p.Problem != "" {
		fmt.Fprintf(&b, "- Problem: %s\n", p.Problem)
	}
	if p.Goal != "" {
		fmt.Fprintf(&b, "- Goal: %s\n", p.Goal)
	}
	if p.HasFunding {
		fmt.Fprintf(&b, "- Budget: %s\n", p.Budget)
	}
	if p.HasRaised {
		fmt.Fprintf(&b, "- Raised so far: %s\n", p.Raised)
	}
	if p.HasVoting {
		fmt.Fprintf(&b, "- Current votes: %s\n", p.TotalVotes)
	}
	fmt.Fprintf(&b, "\nAnswer in %s. Provide a helpful, informative response about this specific project.", languageName(req.Language))
	return b.String()
}

// conversation maps the transcript to Gemini turns. Leading assistant turns
// (the greeting) are skipped so the conversation starts with the user.
func conversation(req Request) []*genai.Content {
	var contents []*genai.Content
	for _, m := range req.History {
		if m.Role == RoleAssistant && len(contents) == 0 {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return append(contents, genai.NewContentFromText(req.Question, genai.RoleUser))
}

func languageName(lang i18n.Language) string {
	switch lang {
	case i18n.Armenian:
		return "Armenian"
	case i18n.Russian:
		return "Russian"
	default:
		return "English"
	}
}
