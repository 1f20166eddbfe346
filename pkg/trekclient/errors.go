package trekclient

import (
	"errors"
	"fmt"
)

// APIError is a non-success response from the service.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of err when it is an *APIError, and 0
// otherwise.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Session error codes reported by Session.Ensure.
const (
	// Refresh did not produce an access token. The admin has to sign in
	// again.
	CodeSessionExpired = "session_expired"

	// The access token was rejected by verify.
	CodeUnauthorized = "unauthorized"

	// The service could not be reached or sent an unreadable reply.
	CodeServerError = "server_error"
)

// SessionError reports why a session could not be established.
type SessionError struct {
	Code string
	Err  error
}

func (e *SessionError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return e.Code + ": " + e.Err.Error()
}

func (e *SessionError) Unwrap() error { return e.Err }

// refreshFailure classifies a failed refresh call. Any answer from the
// service other than a new token means the session is gone.
func refreshFailure(err error) *SessionError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &SessionError{Code: CodeSessionExpired, Err: err}
	}
	return &SessionError{Code: CodeServerError, Err: err}
}

// verifyFailure classifies a failed verify call.
func verifyFailure(err error) *SessionError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &SessionError{Code: CodeUnauthorized, Err: err}
	}
	return &SessionError{Code: CodeServerError, Err: err}
}
