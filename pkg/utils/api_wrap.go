package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

const (
	msgItineraryParseFailed = "Failed to parse trip itinerary from AI response"
	msgUpstreamFailed       = "AI provider request failed"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: verr.Error(),
		TraceID: c.GetString(TraceIDKey),
		Errors:  verr.Fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		RespondValidationError(c, verr)
		return
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		zap.L().Error("itinerary generation is not configured", zap.Error(err))
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrUpstream):
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			RespondError(c, http.StatusBadGateway, upstream.Error())
			return
		}
		zap.L().Warn("upstream generation request failed", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusBadGateway, msgUpstreamFailed)
	case errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrParse),
		errors.Is(err, ErrSchema):
		RespondError(c, http.StatusBadGateway, msgItineraryParseFailed)
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrOwnerRequired):
		RespondError(c, http.StatusBadRequest, "ownerId is required")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: trip belongs to another owner")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unknown error", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
