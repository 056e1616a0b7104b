// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// Context-menu item registered on install.
const (
	MenuItemID    = "translateSelectedTextContextMenu"
	MenuItemTitle = "선택 텍스트 한국어로 번역 (Gemini)"
	MenuContext   = "selection"
)

// errorAlertPrefix heads the alert shown in the tab when a translation fails.
const errorAlertPrefix = "번역 오류: "

// logPreviewLen bounds how much of the selected text is logged.
const logPreviewLen = 50

// ContextMenuResult reports what one context-menu invocation did.
type ContextMenuResult struct {
	// Handled is false when the click was ignored.
	Handled bool
	// Status is the page's acknowledgement when the translation was delivered.
	Status model.ReplaceStatus
	// Alert is the message shown to the user when the invocation failed.
	Alert string
}

// Orchestrator reacts to user actions: it translates the selection and hands
// the result to the page, or reports the failure in the page.
type Orchestrator struct {
	translator driven.Translator
	pages      driven.PageMessenger
	menus      driven.MenuRegistry
	options    driven.OptionsOpener
	store      driven.CredentialStore
	logger     *slog.Logger
}

// NewOrchestrator creates an Orchestrator with all required dependencies.
func NewOrchestrator(
	translator driven.Translator,
	pages driven.PageMessenger,
	menus driven.MenuRegistry,
	options driven.OptionsOpener,
	store driven.CredentialStore,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		translator: translator,
		pages:      pages,
		menus:      menus,
		options:    options,
		store:      store,
		logger:     logger,
	}
}

// OnInstalled registers the context-menu item and, on first install without
// a stored key, opens the options page.
func (o *Orchestrator) OnInstalled(ctx context.Context, reason model.InstallReason) {
	o.logger.Info("installed", "reason", reason)

	err := o.menus.RegisterMenuItem(model.ContextMenuItem{
		ID:       MenuItemID,
		Title:    MenuItemTitle,
		Contexts: []string{MenuContext},
	})
	if err != nil {
		o.logger.Error("failed to register context menu item", "error", err)
	}

	if reason != model.InstallReasonInstall {
		return
	}

	apiKey, err := o.store.Get(ctx)
	if err != nil {
		o.logger.Error("failed to read api key", "error", err)
		return
	}
	if model.IsConfigured(apiKey) {
		return
	}

	o.logger.Info("api key not configured, opening options page")
	if err := o.options.OpenOptions(); err != nil {
		o.logger.Error("failed to open options page", "error", err)
	}
}

// HandleContextMenu translates the clicked selection and replaces it in the
// tab. Clicks on other items, without a tab, or without selected text are
// ignored. Failures are shown in the tab as an alert and never returned.
func (o *Orchestrator) HandleContextMenu(ctx context.Context, click model.ContextMenuClick) ContextMenuResult {
	if click.MenuItemID != MenuItemID || click.TabID == 0 || click.SelectionText == "" {
		return ContextMenuResult{}
	}

	o.logger.Info("context menu translation requested",
		"tab_id", click.TabID,
		"text", previewText(click.SelectionText),
	)

	status, err := o.translateIntoTab(ctx, click.TabID, click.SelectionText)
	if err != nil {
		o.logger.Error("selection translation failed", "tab_id", click.TabID, "error", err)

		message := errorAlertPrefix + err.Error()
		if alertErr := o.pages.Alert(ctx, click.TabID, message); alertErr != nil {
			o.logger.Error("failed to show error alert", "tab_id", click.TabID, "error", alertErr)
		}
		return ContextMenuResult{Handled: true, Status: model.ReplaceStatusError, Alert: message}
	}

	return ContextMenuResult{Handled: true, Status: status}
}

func (o *Orchestrator) translateIntoTab(ctx context.Context, tab model.TabID, text string) (model.ReplaceStatus, error) {
	translated, err := o.translator.Translate(ctx, text)
	if err != nil {
		return "", err
	}

	if err := o.pages.EnsureInjector(ctx, tab); err != nil {
		return "", fmt.Errorf("inject page script: %w", err)
	}

	resp, err := o.pages.ReplaceSelection(ctx, tab, model.NewReplaceSelectionRequest(translated))
	if err != nil {
		return "", fmt.Errorf("send replaceSelection: %w", err)
	}

	o.logger.Info("page response", "tab_id", tab, "status", resp.Status, "message", resp.Message)
	return resp.Status, nil
}

// HandleTranslate answers an inbound translate message. It never touches a
// page. ok is false for any other action, which gets no response.
func (o *Orchestrator) HandleTranslate(ctx context.Context, req model.TranslateRequest) (resp model.TranslateResponse, ok bool) {
	if req.Action != model.ActionTranslate {
		return model.TranslateResponse{}, false
	}

	translated, err := o.translator.Translate(ctx, req.Text)
	if err != nil {
		o.logger.Warn("translate message failed", "error", err)
		return model.TranslateResponse{Error: err.Error()}, true
	}
	return model.TranslateResponse{TranslatedText: &translated}, true
}

func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= logPreviewLen {
		return text
	}
	return string(runes[:logPreviewLen]) + "..."
}
