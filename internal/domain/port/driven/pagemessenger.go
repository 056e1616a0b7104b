package driven

import (
	"context"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// PageMessenger is the cross-context boundary between the orchestrator and the
// page contexts it drives.
type PageMessenger interface {
	// EnsureInjector makes the page injector available in the tab. Calling it
	// on a tab that already has one is a no-op.
	EnsureInjector(ctx context.Context, tab model.TabID) error

	// ReplaceSelection delivers translated text to the tab's injector and waits
	// for its acknowledgement.
	ReplaceSelection(ctx context.Context, tab model.TabID, req model.ReplaceSelectionRequest) (model.ReplaceSelectionResponse, error)

	// Alert shows a blocking message to the user in the tab.
	Alert(ctx context.Context, tab model.TabID, message string) error
}

// MenuRegistry registers context-menu items with the host platform.
type MenuRegistry interface {
	RegisterMenuItem(item model.ContextMenuItem) error
}

// OptionsOpener opens the configuration UI.
type OptionsOpener interface {
	OpenOptions() error
}
