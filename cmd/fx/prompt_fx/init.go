package prompt_fx

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryGenerator,
	ProvideItineraryService)

// ProvideItineraryGenerator selects the AI provider. A missing API key is not
// a startup failure: the generator then answers every call with ErrConfiguration.
func ProvideItineraryGenerator(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.ItineraryGenerator, error) {
	switch cfg.GenerationProvider {
	case config.ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			logger.Warn("OPENAI_API_KEY is not set; itinerary generation is disabled")
			return utils.NewUnconfiguredGenerator(config.ProviderOpenAI, "OPENAI_API_KEY"), nil
		}
		logger.Info("Initializing OpenAI generator", zap.String("model", cfg.OpenAIModel))
		return utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil

	case config.ProviderGeminiSDK:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			logger.Warn("GEMINI_API_KEY is not set; itinerary generation is disabled")
			return utils.NewUnconfiguredGenerator(config.ProviderGeminiSDK, "GEMINI_API_KEY"), nil
		}
		logger.Info("Initializing Gemini SDK generator", zap.String("model", cfg.GeminiModel))
		client, err := utils.NewGeminiSDKClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return client, nil

	case config.ProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			logger.Warn("GEMINI_API_KEY is not set; itinerary generation is disabled")
		}
		logger.Info("Initializing Gemini generator", zap.String("model", cfg.GeminiModel))
		return utils.NewGeminiRESTClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, nil), nil

	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'gemini', 'gemini-sdk' or 'openai'", cfg.GenerationProvider)
	}
}

func ProvideItineraryService(generator utils.ItineraryGenerator, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, logger)
}
