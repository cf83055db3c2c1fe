package utils_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

func TestOpenAIClient_GenerateText_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, "plan", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"summary\":\"S\"}"}}]}`))
	}))
	defer srv.Close()

	client := utils.NewOpenAIClient("sk-test", srv.URL+"/v1", "")
	text, err := client.GenerateText(context.Background(), "plan")

	require.NoError(t, err)
	assert.Equal(t, `{"summary":"S"}`, text)
	assert.Equal(t, "openai", client.Provider())
}

func TestOpenAIClient_GenerateText_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	client := utils.NewOpenAIClient("sk-test", srv.URL+"/v1", "gpt-4o-mini")
	_, err := client.GenerateText(context.Background(), "plan")

	require.ErrorIs(t, err, utils.ErrUpstream)
	var upstream *utils.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "quota exceeded")
}

func TestOpenAIClient_GenerateText_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := utils.NewOpenAIClient("sk-test", srv.URL+"/v1", "").GenerateText(context.Background(), "plan")

	assert.ErrorIs(t, err, utils.ErrEmptyResponse)
}

func TestOpenAIClient_GenerateText_MissingKey(t *testing.T) {
	_, err := utils.NewOpenAIClient("", "", "").GenerateText(context.Background(), "plan")

	assert.ErrorIs(t, err, utils.ErrConfiguration)
}
