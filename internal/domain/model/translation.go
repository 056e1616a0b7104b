package model

// TargetLanguage is the only language translations are produced in.
const TargetLanguage = "Korean"

// TranslateRequest is the inbound "translate" message from another internal caller.
type TranslateRequest struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

// TranslateResponse answers a TranslateRequest with either the translated text or an
// error message, never both.
type TranslateResponse struct {
	TranslatedText *string `json:"translatedText,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// Message actions exchanged between the orchestrator, page contexts, and callers.
const (
	ActionTranslate        = "translate"
	ActionReplaceSelection = "replaceSelection"
)
