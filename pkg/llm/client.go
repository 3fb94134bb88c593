package llm

import (
	"context"
	"fmt"
	"strings"
)

// GenerationConfig carries the sampling parameters sent with every prompt.
type GenerationConfig struct {
	Temperature     float64
	MaxOutputTokens int64
	TopP            float64
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 512,
		TopP:            0.8,
	}
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// NewTextGenerator picks a provider by name. An empty name means OpenAI.
func NewTextGenerator(provider, apiKey string, config GenerationConfig) (TextGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		return NewOpenAIClient(apiKey, config), nil
	case "anthropic":
		return NewAnthropicClient(apiKey, config), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
