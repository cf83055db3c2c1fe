package utils_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &utils.ValidationError{Fields: []utils.FieldError{{Field: "destination", Message: "is required"}}}, http.StatusBadRequest, "validation failed: destination is required"},
		{"configuration", fmt.Errorf("%w: GEMINI_API_KEY environment variable is not set", utils.ErrConfiguration), http.StatusServiceUnavailable, "generation API key is not configured: GEMINI_API_KEY environment variable is not set"},
		{"upstream", &utils.UpstreamError{Provider: "Gemini", StatusCode: 503, Body: "overloaded"}, http.StatusBadGateway, "Gemini API error: 503 - overloaded"},
		{"upstream transport", fmt.Errorf("%w: Post \"https://example.test/v1beta/models/m:generateContent\": dial tcp: connection refused", utils.ErrUpstream), http.StatusBadGateway, "AI provider request failed"},
		{"empty", utils.ErrEmptyResponse, http.StatusBadGateway, "Failed to parse trip itinerary from AI response"},
		{"parse", fmt.Errorf("%w: no JSON object", utils.ErrParse), http.StatusBadGateway, "Failed to parse trip itinerary from AI response"},
		{"schema", utils.ErrSchema, http.StatusBadGateway, "Failed to parse trip itinerary from AI response"},
		{"not found", utils.ErrTripNotFound, http.StatusNotFound, "Trip not found"},
		{"owner required", utils.ErrOwnerRequired, http.StatusBadRequest, "ownerId is required"},
		{"unauthorized", utils.ErrUnauthorized, http.StatusUnauthorized, "Invalid or expired token"},
		{"forbidden", utils.ErrForbidden, http.StatusForbidden, "Forbidden: trip belongs to another owner"},
		{"database", fmt.Errorf("%w: dial tcp", utils.ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(utils.TraceIDKey, "trace-1")

			utils.HandleServiceError(c, tc.err)

			require.Equal(t, tc.status, w.Code)
			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, tc.message, resp.Message)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestRespondValidationError_ListsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	utils.RespondValidationError(c, &utils.ValidationError{Fields: []utils.FieldError{
		{Field: "interests", Message: "must contain at least 1 item(s)"},
	}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "interests", resp.Errors[0].Field)
}
