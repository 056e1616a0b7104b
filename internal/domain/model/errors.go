package model

import (
	"errors"
	"fmt"
)

// Translation and injection failures. Every one of them is terminal for the
// invocation that produced it.
var (
	// ErrNotConfigured is returned when no API key is stored.
	ErrNotConfigured = errors.New("api key not configured: set it in the options")
	// ErrInvalidCredential is returned when the remote API rejects the key.
	ErrInvalidCredential = errors.New("api key not valid: check the options")
	// ErrRateLimited is returned for HTTP 429 responses.
	ErrRateLimited = errors.New("api rate limit exceeded (429): wait and try again")
	// ErrParse is returned for a success response carrying no extractable text.
	ErrParse = errors.New("could not parse translation from api response")
	// ErrNoSelection reports that a page had no active selection. The translated
	// text is still shown to the user through the fallback path.
	ErrNoSelection = errors.New("no active selection to replace")
	// ErrEmptyCredential is returned when saving an empty or whitespace-only key.
	ErrEmptyCredential = errors.New("api key must not be empty")
)

// APIError is any non-success response not covered by a more specific error.
type APIError struct {
	Status  int
	Message string
	// Snippet holds the start of a body that could not be decoded as JSON.
	Snippet string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api request failed with status %d: %s...", e.Status, e.Snippet)
}

// ContentBlockedError reports that a safety filter refused the request, either
// before generation (prompt feedback) or after it (finish reason).
type ContentBlockedError struct {
	Reason string
	// Finished is true when the block came from the candidate's finish reason.
	Finished bool
}

func (e *ContentBlockedError) Error() string {
	if e.Finished {
		return "content blocked due to finish reason: " + e.Reason
	}
	return "content blocked by safety filter: " + e.Reason
}
