package factory

import (
	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/providers"
	"github.com/voyago/voyago-backend/internal/providers/openai"
)

// NewFromConfig builds the configured LLM provider. A missing API key
// yields (nil, nil): the assistant then runs in keyword-fallback mode
// rather than failing startup.
func NewFromConfig(cfg config.LLMConfig) (providers.Provider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	return openai.NewProvider(cfg)
}
