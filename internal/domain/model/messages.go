package model

// ReplaceStatus reports how a page context handled a ReplaceSelectionRequest.
type ReplaceStatus string

const (
	ReplaceStatusReplaced    ReplaceStatus = "selection_replaced"
	ReplaceStatusNoSelection ReplaceStatus = "no_selection"
	ReplaceStatusError       ReplaceStatus = "error"
)

// ReplaceSelectionRequest is sent from the orchestrator to a page context.
type ReplaceSelectionRequest struct {
	Action         string `json:"action"`
	TranslatedText string `json:"translatedText"`
}

// NewReplaceSelectionRequest builds a request for the given translated text.
func NewReplaceSelectionRequest(text string) ReplaceSelectionRequest {
	return ReplaceSelectionRequest{Action: ActionReplaceSelection, TranslatedText: text}
}

// ReplaceSelectionResponse is the page context's acknowledgement.
type ReplaceSelectionResponse struct {
	Status  ReplaceStatus `json:"status"`
	Message string        `json:"message,omitempty"`
}

// TabID identifies a page context hosted by the tab host.
type TabID int64

// ContextMenuItem describes an action registered with the host platform.
type ContextMenuItem struct {
	ID       string
	Title    string
	Contexts []string
}

// ContextMenuClick is delivered when the user invokes a context-menu item.
type ContextMenuClick struct {
	MenuItemID    string
	TabID         TabID
	SelectionText string
}

// InstallReason mirrors the platform's lifecycle event reasons.
type InstallReason string

const (
	InstallReasonInstall InstallReason = "install"
	InstallReasonUpdate  InstallReason = "update"
)
