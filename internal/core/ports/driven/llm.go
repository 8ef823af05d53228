package driven

import "context"

// LLMService provides text completion for answers and content suggestions.
//
// Calls are synchronous single-shot request/response; there is no internal
// retry. A call exceeding its timeout fails with domain.ErrProviderTimeout.
type LLMService interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request that does not run inference.
	Ping(ctx context.Context) error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// SystemPrompt overrides the default system instruction when non-empty.
	SystemPrompt string

	// MaxTokens is the token budget for the completion.
	MaxTokens int

	// Temperature controls randomness. Zero means the provider default.
	Temperature float64
}
