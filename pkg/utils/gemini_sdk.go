package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiSDKClient implements ItineraryGenerator using the Google generative AI SDK.
type GeminiSDKClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSDKClient(ctx context.Context, apiKey, model string) (*GeminiSDKClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSDKClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSDKClient) Provider() string {
	return "gemini-sdk"
}

func (c *GeminiSDKClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(SamplingTemperature)
	m.SetTopK(SamplingTopK)
	m.SetTopP(SamplingTopP)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", upstreamFromGoogleAPI("Gemini", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func (c *GeminiSDKClient) Close() error {
	return c.client.Close()
}

func upstreamFromGoogleAPI(provider string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		body := apiErr.Body
		if body == "" {
			body = apiErr.Message
		}
		return &UpstreamError{Provider: provider, StatusCode: apiErr.Code, Body: body}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
