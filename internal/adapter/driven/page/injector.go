package page

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// ContainerStyle keeps the translated text's whitespace and line breaks while
// blending into the surrounding typography.
const ContainerStyle = "white-space: pre-wrap; margin: 0; padding: 0; border: none; " +
	"background: transparent; font-family: inherit; font-size: inherit; " +
	"line-height: inherit; color: inherit"

// fallbackPrefix heads the dialog shown when there is no selection to replace.
const fallbackPrefix = "번역 결과 (선택 영역 교체 실패):\n"

// Fallback shows the translation to the user when it cannot be spliced into
// the page.
type Fallback interface {
	ShowTranslation(message string)
}

// FallbackFunc adapts a function to the Fallback interface.
type FallbackFunc func(message string)

// ShowTranslation calls f(message).
func (f FallbackFunc) ShowTranslation(message string) { f(message) }

// Injector is the page-context message receiver that replaces the selection
// with translated text.
type Injector struct {
	doc      *Document
	fallback Fallback
	logger   *slog.Logger
}

// NewInjector creates an Injector bound to one document.
func NewInjector(doc *Document, fallback Fallback, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Injector{doc: doc, fallback: fallback, logger: logger}
}

// Handle answers one replaceSelection message.
func (i *Injector) Handle(req model.ReplaceSelectionRequest) model.ReplaceSelectionResponse {
	if req.Action != model.ActionReplaceSelection {
		return model.ReplaceSelectionResponse{
			Status:  model.ReplaceStatusError,
			Message: "unknown action " + req.Action,
		}
	}
	i.logger.Debug("replaceSelection received", "text", req.TranslatedText)
	return i.ReplaceSelection(req.TranslatedText)
}

// ReplaceSelection deletes the selected contents and inserts a container
// holding text at their place. Without a selection the text goes to the
// fallback instead and the response reports no_selection.
func (i *Injector) ReplaceSelection(text string) model.ReplaceSelectionResponse {
	r, ok := i.doc.Selection()
	if !ok {
		return i.showFallback(text)
	}

	r.DeleteContents()
	r.InsertNode(NewContainer(text))
	i.doc.ClearSelection()

	i.logger.Info("selection replaced with translation")
	return model.ReplaceSelectionResponse{Status: model.ReplaceStatusReplaced}
}

// showFallback is the no-selection branch: the user still gets the text.
func (i *Injector) showFallback(text string) model.ReplaceSelectionResponse {
	i.logger.Warn("no selection to replace, showing translation instead")
	if i.fallback != nil {
		i.fallback.ShowTranslation(fallbackPrefix + text)
	}
	return model.ReplaceSelectionResponse{
		Status:  model.ReplaceStatusNoSelection,
		Message: model.ErrNoSelection.Error(),
	}
}

// NewContainer builds the <div> that carries translated text. The text is
// assigned the way innerText assignment does it: every line break becomes a
// <br> and all other characters, leading spaces included, stay as text.
func NewContainer(text string) *html.Node {
	div := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "style", Val: ContainerStyle}},
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	for idx, line := range strings.Split(normalized, "\n") {
		if idx > 0 {
			div.AppendChild(&html.Node{Type: html.ElementNode, DataAtom: atom.Br, Data: "br"})
		}
		if line != "" {
			div.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}
	return div
}
