package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeInvalidCredentials is used when login fails
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	// ErrCodeAccountLocked is used when the account is temporarily locked
	ErrCodeAccountLocked = "ERR_ACCOUNT_LOCKED"
	// ErrCodeAccountInactive is used when the account was deactivated
	ErrCodeAccountInactive = "ERR_ACCOUNT_INACTIVE"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeTokenRevoked is used when the token was blacklisted by logout
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Upload error codes
const (
	// ErrCodeUnsupportedMedia is used when the content type is not allowed
	ErrCodeUnsupportedMedia = "ERR_UNSUPPORTED_MEDIA_TYPE"
	// ErrCodeFileTooLarge is used when an upload exceeds the size limit
	ErrCodeFileTooLarge = "ERR_FILE_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	// ErrCodeTooManyRequests is an alias for rate limiting
	ErrCodeTooManyRequests = "ERR_TOO_MANY_REQUESTS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAccountLocked:      http.StatusForbidden,
	ErrCodeAccountInactive:    http.StatusForbidden,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Upload errors
	ErrCodeUnsupportedMedia: http.StatusUnsupportedMediaType,
	ErrCodeFileTooLarge:     http.StatusRequestEntityTooLarge,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to the ERR_ convention
// used on the wire. Domain constructors raise short codes; the dto layer
// owns the HTTP vocabulary.
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"PROPERTY_NOT_FOUND":     ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeInvalidInput,
	"INVALID_STATE":          ErrCodeInvalidState,
	"UNAUTHORIZED":           ErrCodeUnauthorized,
	"FORBIDDEN":              ErrCodeForbidden,
	"CONCURRENCY_CONFLICT":   ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":       ErrCodeValidation,
	"BAD_REQUEST":            ErrCodeBadRequest,
	"INTERNAL_ERROR":         ErrCodeInternal,
	"INVALID_CREDENTIALS":    ErrCodeInvalidCredentials,
	"ACCOUNT_LOCKED":         ErrCodeAccountLocked,
	"ACCOUNT_INACTIVE":       ErrCodeAccountInactive,
	"TOKEN_EXPIRED":          ErrCodeTokenExpired,
	"TOKEN_INVALID":          ErrCodeTokenInvalid,
	"TOKEN_REVOKED":          ErrCodeTokenRevoked,
	"TOKEN_MAX_REFRESH":      ErrCodeTokenInvalid,
	"TOKEN_ERROR":            ErrCodeTokenInvalid,
	"INVALID_PROPERTY":       ErrCodeInvalidInput,
	"INVALID_PRICE":          ErrCodeInvalidInput,
	"INVALID_INQUIRY":        ErrCodeInvalidInput,
	"INVALID_POST":           ErrCodeInvalidInput,
	"INVALID_TESTIMONIAL":    ErrCodeInvalidInput,
	"INVALID_FAQ":            ErrCodeInvalidInput,
	"INVALID_SERVICE":        ErrCodeInvalidInput,
	"INVALID_SETTING":        ErrCodeInvalidInput,
	"INVALID_USER":           ErrCodeInvalidInput,
	"INVALID_PASSWORD":       ErrCodeInvalidInput,
	"INVALID_ROLE":           ErrCodeInvalidInput,
	"UNSUPPORTED_MEDIA_TYPE": ErrCodeUnsupportedMedia,
	"FILE_TOO_LARGE":         ErrCodeFileTooLarge,
}

// NormalizeErrorCode converts a domain error code to the wire format.
// Codes already in the ERR_ convention or unknown pass through unchanged.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := LegacyErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
