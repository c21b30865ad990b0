package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/ai/gemini"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// newNarrator returns nil without an error when narration is disabled.
func newNarrator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Narrator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gcfg.APIKeyFile,
		Env:  geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or %s)", err, geminiAPIKeyEnv)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries, log)
	if err != nil {
		return nil, err
	}

	aiLogger := logger.WithCommonFields(log, "gemini", generator.Model())

	return gemini.NewNarrator(generator, gcfg.MaxLogLength, aiLogger), nil
}
