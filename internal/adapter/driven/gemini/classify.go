package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

const errorSnippetLen = 100

// invalidKeyMarkers are substrings of error messages the API uses for a rejected
// key. The wording is not a documented contract, so matching is best-effort.
var invalidKeyMarkers = []string{
	"API key not valid",
	"API_KEY_INVALID",
}

// classifyFailure maps a non-success response to a domain error. It is the only
// place that inspects remote error wording.
func classifyFailure(status int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &model.APIError{Status: status, Snippet: truncate(string(body), errorSnippetLen)}
	}

	message := ""
	if envelope.Error != nil {
		message = envelope.Error.Message
	}
	if message == "" {
		message = fmt.Sprintf("API Error (%d)", status)
	}

	if isInvalidKeyMessage(message) {
		return model.ErrInvalidCredential
	}
	if status == http.StatusTooManyRequests {
		return model.ErrRateLimited
	}
	return &model.APIError{Status: status, Message: message}
}

func isInvalidKeyMessage(message string) bool {
	for _, marker := range invalidKeyMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
