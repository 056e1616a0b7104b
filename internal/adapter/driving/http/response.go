package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/tab"
	"github.com/ericfisherdev/kotranslate/internal/application"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// TranslateRequest is the JSON body for the translate endpoint. Text is sent
// to the model untouched, whitespace included.
type TranslateRequest struct {
	Text string `json:"text"`
}

// OpenTabRequest is the JSON body for opening a tab.
type OpenTabRequest struct {
	HTML string `json:"html"`
}

// OpenTabResponse carries the new tab's id.
type OpenTabResponse struct {
	ID int64 `json:"id"`
}

// TabResponse is the JSON representation of a tab snapshot.
type TabResponse struct {
	ID            int64    `json:"id"`
	HTML          string   `json:"html"`
	Alerts        []string `json:"alerts"`
	HasSelection  bool     `json:"has_selection"`
	SelectionText string   `json:"selection_text"`
	Injected      bool     `json:"injected"`
}

// SelectionResponse carries the text covered by a new selection.
type SelectionResponse struct {
	SelectionText string `json:"selection_text"`
}

// MenuItemResponse is the JSON representation of a context-menu item.
type MenuItemResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Contexts []string `json:"contexts"`
}

// ContextMenuResponse reports the outcome of a context-menu click.
type ContextMenuResponse struct {
	Handled bool   `json:"handled"`
	Status  string `json:"status,omitempty"`
	Alert   string `json:"alert,omitempty"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toTabResponse(snap tab.Snapshot) TabResponse {
	alerts := snap.Alerts
	if alerts == nil {
		alerts = []string{}
	}

	return TabResponse{
		ID:            int64(snap.ID),
		HTML:          snap.HTML,
		Alerts:        alerts,
		HasSelection:  snap.HasSelection,
		SelectionText: snap.SelectionText,
		Injected:      snap.Injected,
	}
}

func toMenuItemResponse(item model.ContextMenuItem) MenuItemResponse {
	contexts := item.Contexts
	if contexts == nil {
		contexts = []string{}
	}

	return MenuItemResponse{
		ID:       item.ID,
		Title:    item.Title,
		Contexts: contexts,
	}
}

func toContextMenuResponse(result application.ContextMenuResult) ContextMenuResponse {
	return ContextMenuResponse{
		Handled: result.Handled,
		Status:  string(result.Status),
		Alert:   result.Alert,
	}
}
