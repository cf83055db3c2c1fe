package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

type stubVerifier struct {
	owners map[string]string
}

func (v stubVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if owner, ok := v.owners[token]; ok {
		return owner, nil
	}
	return "", errors.New("bad token")
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/trips", func(c *gin.Context) {
		c.String(http.StatusOK, "owner=%s trace=%s",
			middleware.AuthenticatedOwner(c), c.GetString(utils.TraceIDKey))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(middleware.AuthMiddleware(stubVerifier{owners: map[string]string{"good": "user-1"}}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer good", http.StatusOK, "owner=user-1 trace="},
		{"missing header", "", http.StatusUnauthorized, "Authorization header missing or invalid"},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, "Authorization header missing or invalid"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	r := newEngine(middleware.AuthMiddleware(nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner= trace=", rec.Body.String())
}

func TestAuthMiddleware_JWTVerifier(t *testing.T) {
	token, err := utils.CreateToken([]byte("s3cret"), "user-9", 0)
	require.NoError(t, err)
	r := newEngine(middleware.AuthMiddleware(utils.NewJWTVerifier("s3cret")))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// A zero TTL token is already expired.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newEngine(middleware.TraceIDMiddleware())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))
	generated := rec.Header().Get(middleware.TraceIDHeader)
	require.Len(t, generated, 36)
	assert.Contains(t, rec.Body.String(), "trace="+generated)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set(middleware.TraceIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.TraceIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(middleware.CORSMiddleware([]string{"http://localhost:5173"}))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	r := newEngine(middleware.CORSMiddleware([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Origin", "http://anything.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := newEngine(middleware.RequestLogger(zap.NewNop()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
