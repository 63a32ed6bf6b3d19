package extraction

import (
	"errors"
	"fmt"
)

// Failure taxonomy for Analyze. Callers classify with errors.Is; the wrapped
// message carries the original detail (HTTP status, decode error, content).
var (
	// ErrNotConfigured means the endpoint, API key or deployment is missing.
	// No network call is attempted.
	ErrNotConfigured = errors.New("extraction client is not configured")

	// ErrDeploymentNotFound maps a provider 404 onto the configured deployment.
	ErrDeploymentNotFound = errors.New("deployment not found")

	// ErrAuthenticationFailed maps a provider 401.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTruncated means the completion hit the output token limit. The
	// content is never parsed, even when it happens to be valid JSON.
	ErrTruncated = errors.New("completion truncated by output token limit")

	// ErrMalformedResponse means the completion carried no message content.
	ErrMalformedResponse = errors.New("completion contains no message content")

	// ErrInvalidJSON means the message content did not decode as JSON.
	ErrInvalidJSON = errors.New("completion content is not valid JSON")

	// ErrSchemaViolation means the decoded content failed the local schema
	// re-check (only when ValidateResponses is enabled).
	ErrSchemaViolation = errors.New("completion content violates the analysis schema")
)

// APIError is a non-2xx reply from the completion endpoint. Failures without
// a dedicated taxonomy entry are returned as-is so nothing gets swallowed.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API error: %s - %s", e.Status, e.Body)
}
