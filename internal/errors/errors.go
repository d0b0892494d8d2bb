package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Concrete domain errors wrap exactly one of these.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	// ErrEmailInUse is returned when registering an email that already belongs to a user.
	ErrEmailInUse = fmt.Errorf("email already in use: %w", ErrConflict)
	// ErrInvalidCredentials is returned when the email is unknown or the password differs.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = fmt.Errorf("user not found: %w", ErrNotFound)
	// ErrIncidentNotFound is returned when an incident id does not exist.
	ErrIncidentNotFound = fmt.Errorf("incident not found: %w", ErrNotFound)
	// ErrResourceNotFound is returned when a resource id does not exist.
	ErrResourceNotFound = fmt.Errorf("resource not found: %w", ErrNotFound)
	// ErrProfileNotFound is returned when a user has no volunteer profile.
	ErrProfileNotFound = fmt.Errorf("volunteer profile not found: %w", ErrNotFound)
	// ErrProfileExists is returned when a user already has a volunteer profile.
	ErrProfileExists = fmt.Errorf("volunteer profile already exists: %w", ErrConflict)
	// ErrInvalidTransition is returned when an incident status change is not allowed.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrInvalidInput)
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var codes = map[error]string{
	ErrEmailInUse:         "EMAIL_IN_USE",
	ErrInvalidCredentials: "INVALID_CREDENTIALS",
	ErrUserNotFound:       "USER_NOT_FOUND",
	ErrIncidentNotFound:   "INCIDENT_NOT_FOUND",
	ErrResourceNotFound:   "RESOURCE_NOT_FOUND",
	ErrProfileNotFound:    "PROFILE_NOT_FOUND",
	ErrProfileExists:      "PROFILE_EXISTS",
	ErrInvalidTransition:  "INVALID_TRANSITION",
}

// MapErrorToHTTP maps domain errors to HTTP errors by kind.
// Unclassified errors become a generic 500 so storage details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	code := "INTERNAL_ERROR"
	for target, c := range codes {
		if errors.Is(err, target) {
			code = c
			break
		}
	}

	switch {
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), orDefault(code, "CONFLICT"))
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), orDefault(code, "UNAUTHORIZED"))
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), orDefault(code, "NOT_FOUND"))
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), orDefault(code, "INVALID_INPUT"))
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

func orDefault(code, def string) string {
	if code == "INTERNAL_ERROR" {
		return def
	}
	return code
}
