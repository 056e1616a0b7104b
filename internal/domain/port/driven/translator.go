package driven

import "context"

// Translator is the driven port for the remote translation API.
type Translator interface {
	// Translate returns text translated into Korean with its layout preserved.
	// The result is returned exactly as produced by the remote model.
	Translate(ctx context.Context, text string) (string, error)
}
