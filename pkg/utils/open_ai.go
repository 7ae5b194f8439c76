package utils

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAISuggestionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAISuggestionClient(apiKey string) *OpenAISuggestionClient {
	return &OpenAISuggestionClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT3Dot5Turbo,
	}
}

func (c *OpenAISuggestionClient) Query(ctx context.Context, prompts []string) ([]string, error) {
	responses := make([]string, 0, len(prompts))

	for _, prompt := range prompts {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("empty completion response")
		}
		responses = append(responses, resp.Choices[0].Message.Content)
	}

	return responses, nil
}
