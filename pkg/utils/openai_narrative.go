package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAINarrativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrativeClient(apiKey, model string) NarrativeClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAINarrativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAINarrativeClient) GenerateDayNarrative(ctx context.Context, destination, theme string, venueNames []string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a concise travel writer.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildNarrativePrompt(destination, theme, venueNames),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai narrative: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai narrative: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
