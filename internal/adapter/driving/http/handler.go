// Package httphandler is the REST driving adapter: it exposes translation,
// tab hosting, and context-menu invocation over JSON.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/page"
	"github.com/ericfisherdev/kotranslate/internal/adapter/driven/tab"
	"github.com/ericfisherdev/kotranslate/internal/application"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// maxBodyBytes caps request bodies, page markup included.
const maxBodyBytes = 4 << 20

// TabHost is the subset of the tab host the REST API drives.
type TabHost interface {
	Open(markup string) (model.TabID, error)
	Close(id model.TabID) error
	Select(ctx context.Context, id model.TabID, target page.SelectionSpec) (string, error)
	Snapshot(ctx context.Context, id model.TabID) (tab.Snapshot, error)
	MenuItem(id string) (model.ContextMenuItem, bool)
	MenuItems() []model.ContextMenuItem
}

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	orchestrator *application.Orchestrator
	tabs         TabHost
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(orchestrator *application.Orchestrator, tabs TabHost, logger *slog.Logger) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		tabs:         tabs,
		logger:       logger,
	}
}

// RegisterRoutes registers the REST routes on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/v1/translate", h.Translate)
	mux.HandleFunc("GET /api/v1/menu-items", h.ListMenuItems)
	mux.HandleFunc("POST /api/v1/tabs", h.OpenTab)
	mux.HandleFunc("GET /api/v1/tabs/{id}", h.GetTab)
	mux.HandleFunc("DELETE /api/v1/tabs/{id}", h.CloseTab)
	mux.HandleFunc("PUT /api/v1/tabs/{id}/selection", h.SetSelection)
	mux.HandleFunc("POST /api/v1/tabs/{id}/context-menu/{menuID}", h.ClickMenuItem)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// NewServeMux creates an http.Handler with the REST routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return Wrap(mux, logger)
}

// Wrap applies the logging and recovery middleware to next.
func Wrap(next http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, next)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Translate answers a translate message. Translation failures are reported in
// the body's error field with status 200, the same shape the message reply has.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, _ := h.orchestrator.HandleTranslate(r.Context(), model.TranslateRequest{
		Action: model.ActionTranslate,
		Text:   req.Text,
	})

	writeJSON(w, http.StatusOK, resp)
}

// ListMenuItems returns the registered context-menu items.
func (h *Handler) ListMenuItems(w http.ResponseWriter, _ *http.Request) {
	items := h.tabs.MenuItems()

	resp := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMenuItemResponse(item))
	}

	writeJSON(w, http.StatusOK, resp)
}

// OpenTab loads the posted HTML into a new tab.
func (h *Handler) OpenTab(w http.ResponseWriter, r *http.Request) {
	var req OpenTabRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.tabs.Open(req.HTML)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid html")
		return
	}

	writeJSON(w, http.StatusCreated, OpenTabResponse{ID: int64(id)})
}

// GetTab returns the tab's current markup, alerts, and selection.
func (h *Handler) GetTab(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTabID(w, r)
	if !ok {
		return
	}

	snap, err := h.tabs.Snapshot(r.Context(), id)
	if err != nil {
		h.writeTabError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, toTabResponse(snap))
}

// CloseTab closes the tab.
func (h *Handler) CloseTab(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTabID(w, r)
	if !ok {
		return
	}

	if err := h.tabs.Close(id); err != nil {
		h.writeTabError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetSelection selects a text range in the tab. An empty start selector
// clears the selection.
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTabID(w, r)
	if !ok {
		return
	}

	var target page.SelectionSpec
	if !decodeBody(w, r, &target) {
		return
	}

	text, err := h.tabs.Select(r.Context(), id, target)
	if err != nil {
		if errors.Is(err, tab.ErrNotFound) || errors.Is(err, tab.ErrClosed) {
			h.writeTabError(w, id, err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SelectionResponse{SelectionText: text})
}

// ClickMenuItem invokes a registered context-menu item on the tab's current
// selection, the way a right-click menu would.
func (h *Handler) ClickMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTabID(w, r)
	if !ok {
		return
	}

	menuID := r.PathValue("menuID")
	if _, found := h.tabs.MenuItem(menuID); !found {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	snap, err := h.tabs.Snapshot(r.Context(), id)
	if err != nil {
		h.writeTabError(w, id, err)
		return
	}

	result := h.orchestrator.HandleContextMenu(r.Context(), model.ContextMenuClick{
		MenuItemID:    menuID,
		TabID:         id,
		SelectionText: snap.SelectionText,
	})

	writeJSON(w, http.StatusOK, toContextMenuResponse(result))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) writeTabError(w http.ResponseWriter, id model.TabID, err error) {
	if errors.Is(err, tab.ErrNotFound) || errors.Is(err, tab.ErrClosed) {
		writeError(w, http.StatusNotFound, "tab not found")
		return
	}
	h.logger.Error("tab operation failed", "tab_id", id, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func parseTabID(w http.ResponseWriter, r *http.Request) (model.TabID, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid tab id")
		return 0, false
	}
	return model.TabID(id), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
