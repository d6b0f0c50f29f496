package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeInvalidJSON = "INVALID_JSON"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeSessionExpired     = "SESSION_EXPIRED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Resource error codes
const (
	ErrCodeNotFound = "NOT_FOUND"
)

// Change review error codes. These surface the local guards: they are
// produced before a submission leaves this service.
const (
	ErrCodeMissingReason     = "MISSING_REASON"
	ErrCodeNoChangesDetected = "NO_CHANGES_DETECTED"
	ErrCodeFieldLocked       = "FIELD_LOCKED"
	ErrCodeMissingNote       = "MISSING_NOTE"
)

// ErrCodeSubmissionFailed reports an upstream failure after all local checks
// passed; the client may retry the identical submission.
const ErrCodeSubmissionFailed = "SUBMISSION_FAILED"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeSessionExpired:     http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	ErrCodeNotFound: http.StatusNotFound,

	// Local guard violations -> 422 Unprocessable Entity
	ErrCodeMissingReason:     http.StatusUnprocessableEntity,
	ErrCodeNoChangesDetected: http.StatusUnprocessableEntity,
	ErrCodeFieldLocked:       http.StatusUnprocessableEntity,
	ErrCodeMissingNote:       http.StatusUnprocessableEntity,

	// Input validation -> 400 Bad Request
	"INVALID_INPUT":            http.StatusBadRequest,
	"INVALID_NAME":             http.StatusBadRequest,
	"INVALID_SLUG":             http.StatusBadRequest,
	"INVALID_CODE":             http.StatusBadRequest,
	"INVALID_AMOUNT":           http.StatusBadRequest,
	"INVALID_DISCOUNT":         http.StatusBadRequest,
	"MISSING_SHIPPING_DETAILS": http.StatusBadRequest,
	"MISSING_REPLY":            http.StatusBadRequest,

	// Upstream failure after local checks passed -> 502 Bad Gateway
	ErrCodeSubmissionFailed: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
