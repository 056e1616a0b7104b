// Package web implements the HTML GUI driving adapter using templ components:
// the options page that stores the API key and the popup status indicator.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/kotranslate/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/kotranslate/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/kotranslate/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/kotranslate/internal/application"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

const apiKeyField = "api_key"

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	credentials *application.CredentialService
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(credentials *application.CredentialService, logger *slog.Logger) *Handler {
	return &Handler{
		credentials: credentials,
		logger:      logger,
	}
}

// Options renders the options page with the stored key filled in.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	token := csrfToken(w, r)

	apiKey, err := h.credentials.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load api key", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "Gemini 번역 설정",
		pages.Options(toOptionsViewModel(apiKey, token, "", vm.StatusNone)))
}

// SaveOptions stores the submitted key and re-renders the page with a status
// line that the page script clears after two seconds.
func (h *Handler) SaveOptions(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}
	token := csrfToken(w, r)
	submitted := r.FormValue(apiKeyField)

	err := h.credentials.Save(r.Context(), submitted)
	switch {
	case err == nil:
		h.render(w, r, http.StatusOK, "Gemini 번역 설정",
			pages.Options(toOptionsViewModel(strings.TrimSpace(submitted), token, statusSaved, vm.StatusSuccess)))
	case errors.Is(err, model.ErrEmptyCredential):
		h.render(w, r, http.StatusBadRequest, "Gemini 번역 설정",
			pages.Options(toOptionsViewModel(submitted, token, statusEmptyKey, vm.StatusError)))
	default:
		h.logger.Error("failed to save api key", "error", err)
		h.render(w, r, http.StatusInternalServerError, "Gemini 번역 설정",
			pages.Options(toOptionsViewModel(submitted, token, statusSaveFailed, vm.StatusError)))
	}
}

// Popup renders the credential status indicator.
func (h *Handler) Popup(w http.ResponseWriter, r *http.Request) {
	status, err := h.credentials.Status(r.Context())
	if err != nil {
		h.logger.Error("failed to read api key status", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "Gemini 번역기", pages.Popup(toPopupViewModel(status)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.Layout(title, body).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
	}
}
