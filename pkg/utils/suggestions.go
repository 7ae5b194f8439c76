package utils

import "context"

// SuggestionClient submits a batch of natural-language prompts to a
// completion provider and returns one raw response per prompt, in order.
type SuggestionClient interface {
	Query(ctx context.Context, prompts []string) ([]string, error)
}
