package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSuggestionClient is the alternative suggestion provider, useful on
// the free tier.
type GeminiSuggestionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggestionClient(ctx context.Context, apiKey, model string) (*GeminiSuggestionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggestionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSuggestionClient) Query(ctx context.Context, prompts []string) ([]string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output; callers parse responses as JSON arrays.
	m.ResponseMIMEType = "application/json"

	responses := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		resp, err := m.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no content")
		}
		responses = append(responses, fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	}

	return responses, nil
}
