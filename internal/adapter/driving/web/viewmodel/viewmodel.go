// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// StatusKind selects the color of a status line.
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// OptionsViewModel holds presentation-ready data for the options page.
type OptionsViewModel struct {
	APIKey    string
	CSRFToken string
	// HelpHTML is sanitized HTML rendered from the embedded help text.
	HelpHTML   string
	Status     string
	StatusKind StatusKind
}

// PopupViewModel holds presentation-ready data for the popup status page.
type PopupViewModel struct {
	Configured  bool
	StatusText  string
	StatusKind  StatusKind
	OptionsPath string
}
