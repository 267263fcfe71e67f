package ai

import "context"

// FallbackGenerator adapts the completion client to the responder's
// generative fallback: a single bounded continuation of the user utterance.
type FallbackGenerator struct {
	client *OpenAICompatibleClient
	cfg    ChatConfig
}

func NewFallbackGenerator(client *OpenAICompatibleClient, cfg ChatConfig) *FallbackGenerator {
	return &FallbackGenerator{client: client, cfg: cfg}
}

func (g *FallbackGenerator) Generate(ctx context.Context, utterance string) (string, error) {
	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are a short and friendly customer support assistant for a small shop.",
		},
		{Role: "user", Content: utterance},
	}
	return g.client.Complete(ctx, g.cfg, messages)
}
