package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeAccountLocked, http.StatusForbidden},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeUnsupportedMedia, http.StatusUnsupportedMediaType},
		{ErrCodeFileTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"ERR_SOMETHING_UNMAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("PROPERTY_NOT_FOUND"))
	assert.Equal(t, ErrCodeInvalidCredentials, NormalizeErrorCode("INVALID_CREDENTIALS"))
	assert.Equal(t, ErrCodeTokenInvalid, NormalizeErrorCode("TOKEN_MAX_REFRESH"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_INQUIRY"))
	// Already normalized codes pass through
	assert.Equal(t, ErrCodeForbidden, NormalizeErrorCode(ErrCodeForbidden))
	// Unknown codes pass through untouched
	assert.Equal(t, "SOMETHING_ELSE", NormalizeErrorCode("SOMETHING_ELSE"))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("NOT_FOUND", "Resource not found")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.NotZero(t, resp.Error.Timestamp)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Resource not found", "req-123-456")

	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-123-456", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "Invalid email format"},
		{Field: "rating", Message: "Must be between 1 and 5"},
	}

	resp := NewValidationErrorResponse("Validation failed", "req-789", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-789", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "email", resp.Error.Details[0].Field)
}

func TestErrorResponseJSON(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "User not found", "req-test-123")

	data, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded Response
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.Success)
	assert.Equal(t, ErrCodeNotFound, decoded.Error.Code)
	assert.Equal(t, "req-test-123", decoded.Error.RequestID)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 11, 2, 5)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(11), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
