package llm

import (
	"fmt"
	"strings"

	"github.com/nkurtev/attestor/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider
// name disables narration and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts the runtime LLM configuration
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:      cfg.Provider,
		Model:         cfg.Model,
		APIKey:        cfg.APIKey,
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.Timeout,
		StrictSources: cfg.StrictSources,
		MaxTokens:     cfg.MaxTokens,
	}
}
