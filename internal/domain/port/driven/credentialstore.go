// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"
)

// ErrEncryptionKeyNotSet is returned by a CredentialStore that needs an
// encryption key to read a sealed value but was constructed without one.
var ErrEncryptionKeyNotSet = errors.New("encryption key not configured: set KOTRANSLATE_SECRET_KEY")

// CredentialStore defines the driven port for persisting the single API key.
// Implementations must not cache: every Get observes the latest Set.
type CredentialStore interface {
	// Get returns the stored API key, or ("", nil) when none is configured.
	Get(ctx context.Context) (string, error)

	// Set stores or replaces the API key. Validation is the caller's job.
	Set(ctx context.Context, value string) error
}
