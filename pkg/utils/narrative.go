package utils

import (
	"context"
	"strings"
)

// NarrativeClientInterface decorates a composed day with optional prose.
// Implementations are best-effort: any failure is reported as an error and
// the caller drops the narrative without touching the deterministic plan.
type NarrativeClientInterface interface {
	GenerateDayNarrative(ctx context.Context, destination, theme string, venueNames []string) (string, error)
}

// NoopNarrativeClient is wired when no AI provider key is configured.
type NoopNarrativeClient struct{}

func NewNoopNarrativeClient() NarrativeClientInterface {
	return &NoopNarrativeClient{}
}

func (n *NoopNarrativeClient) GenerateDayNarrative(ctx context.Context, destination, theme string, venueNames []string) (string, error) {
	return "", nil
}

func buildNarrativePrompt(destination, theme string, venueNames []string) string {
	var b strings.Builder
	b.WriteString("Write a short (2-3 sentence) travel-guide style summary for one day of a trip.\n")
	b.WriteString("Destination: " + destination + "\n")
	b.WriteString("Day theme: " + theme + "\n")
	b.WriteString("Planned stops:\n")
	for _, name := range venueNames {
		b.WriteString("- " + name + "\n")
	}
	b.WriteString("\nReturn plain text only, no markdown, no lists.")
	return b.String()
}
