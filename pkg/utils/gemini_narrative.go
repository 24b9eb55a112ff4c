package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiNarrativeClient implements NarrativeClientInterface on the Gemini free tier.
type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(apiKey, model string) (NarrativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrativeClient{client: client, model: model}, nil
}

func (c *GeminiNarrativeClient) GenerateDayNarrative(ctx context.Context, destination, theme string, venueNames []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(buildNarrativePrompt(destination, theme, venueNames)))
	if err != nil {
		return "", fmt.Errorf("gemini narrative: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini narrative: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String()), nil
}
