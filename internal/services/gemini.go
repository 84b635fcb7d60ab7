package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// LLMClient is the narrow completion oracle the orchestrators depend on.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiClient(apiKey, modelName string) (LLMClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		modelName:   modelName,
		temperature: 0.4,
	}, nil
}

// Complete implements LLMClient. Calls are one-shot: no retry, no timeout
// beyond what the caller's context carries.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &g.temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
