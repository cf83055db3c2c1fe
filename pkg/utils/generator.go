package utils

import (
	"context"
	"fmt"
)

// Sampling settings shared by every provider.
const (
	SamplingTemperature float32 = 0.7
	SamplingTopK        int32   = 40
	SamplingTopP        float32 = 0.95
)

// ItineraryGenerator sends one prompt to an AI provider and returns the raw reply text.
// Implementations make exactly one upstream call and never retry.
type ItineraryGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Provider() string
}

type unconfiguredGenerator struct {
	provider string
	envVar   string
}

// NewUnconfiguredGenerator stands in for a provider whose API key is missing,
// failing every call with ErrConfiguration.
func NewUnconfiguredGenerator(provider, envVar string) ItineraryGenerator {
	return &unconfiguredGenerator{provider: provider, envVar: envVar}
}

func (g *unconfiguredGenerator) GenerateText(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %s environment variable is not set", ErrConfiguration, g.envVar)
}

func (g *unconfiguredGenerator) Provider() string {
	return g.provider
}
