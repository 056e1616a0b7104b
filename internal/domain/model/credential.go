// Package model holds the domain types shared by every layer: the stored
// credential, translation messages, and the error taxonomy.
package model

import (
	"strings"
	"time"
)

// CredentialKey is the well-known storage key holding the Gemini API key.
const CredentialKey = "apiKey"

// InstallMarkerKey is the storage key written on the first service start.
const InstallMarkerKey = "installedAt"

// Credential is the single stored API key. An empty Value means the key is not
// configured.
type Credential struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// IsConfigured reports whether value holds a usable credential. Whitespace-only
// values are treated the same as absent.
func IsConfigured(value string) bool {
	return strings.TrimSpace(value) != ""
}

// CredentialStatus is what the popup shows about the stored key.
type CredentialStatus struct {
	Configured bool
	// Preview is the first characters of the key, for log lines and the popup.
	Preview string
}

// PreviewCredential returns at most the first ten characters of value followed
// by an ellipsis, so full keys never reach logs.
func PreviewCredential(value string) string {
	const previewLen = 10
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= previewLen {
		return string(runes) + "..."
	}
	return string(runes[:previewLen]) + "..."
}
