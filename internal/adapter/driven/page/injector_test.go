package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
)

// recordingFallback captures fallback messages.
type recordingFallback struct {
	messages []string
}

func (f *recordingFallback) ShowTranslation(message string) {
	f.messages = append(f.messages, message)
}

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, html.Render(&b, n))
	return b.String()
}

func TestReplaceSelection_SplicesContainer(t *testing.T) {
	doc := mustParse(t, `<p id="a">Hello brave world</p>`)
	_, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 6, EndOffset: 11})
	require.NoError(t, err)
	fallback := &recordingFallback{}

	resp := NewInjector(doc, fallback, nil).ReplaceSelection("용감한")

	assert.Equal(t, model.ReplaceStatusReplaced, resp.Status)
	assert.Empty(t, fallback.messages)
	assert.Contains(t, mustRender(t, doc),
		`<p id="a">Hello <div style="`+ContainerStyle+`">용감한</div> world</p>`)

	_, ok := doc.Selection()
	assert.False(t, ok, "the selection is invalidated after the splice")
}

func TestReplaceSelection_AcrossElementsInsertsBetween(t *testing.T) {
	doc := mustParse(t, `<p id="a">Hello world</p><p id="b">Second para</p>`)
	_, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 6, EndSelector: "#b", EndOffset: 6})
	require.NoError(t, err)

	resp := NewInjector(doc, nil, nil).ReplaceSelection("X")

	assert.Equal(t, model.ReplaceStatusReplaced, resp.Status)
	assert.Contains(t, mustRender(t, doc),
		`<p id="a">Hello </p><div style="`+ContainerStyle+`">X</div><p id="b"> para</p>`)
}

func TestReplaceSelection_MultilineKeepsLayout(t *testing.T) {
	doc := mustParse(t, `<p id="a">original</p>`)
	_, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 0, EndOffset: 8})
	require.NoError(t, err)

	NewInjector(doc, nil, nil).ReplaceSelection("line1\n  line2")

	container := doc.Find("#a > div")
	require.Equal(t, 1, container.Length())
	style, _ := container.Attr("style")
	assert.Contains(t, style, "white-space: pre-wrap")

	out := renderNode(t, container.Get(0))
	assert.Equal(t, 1, strings.Count(out, "<br/>"), "two visual lines")
	assert.Contains(t, out, "line1<br/>  line2")
}

func TestReplaceSelection_NoSelectionFallsBack(t *testing.T) {
	doc := mustParse(t, `<p id="a">untouched</p>`)
	before := mustRender(t, doc)
	fallback := &recordingFallback{}

	resp := NewInjector(doc, fallback, nil).ReplaceSelection("hello")

	assert.Equal(t, model.ReplaceStatusNoSelection, resp.Status)
	assert.Equal(t, model.ErrNoSelection.Error(), resp.Message)
	require.Len(t, fallback.messages, 1)
	assert.True(t, strings.HasSuffix(fallback.messages[0], "hello"))
	assert.Equal(t, before, mustRender(t, doc))
}

func TestHandle_UnknownAction(t *testing.T) {
	doc := mustParse(t, `<p>x</p>`)

	resp := NewInjector(doc, nil, nil).Handle(model.ReplaceSelectionRequest{Action: "highlight"})

	assert.Equal(t, model.ReplaceStatusError, resp.Status)
}

func TestNewContainer_LineBreakForms(t *testing.T) {
	out := renderNode(t, NewContainer("a\r\nb\rc\n\nd"))

	assert.Contains(t, out, "a<br/>b<br/>c<br/><br/>d")
}

func TestNewContainer_EscapesMarkup(t *testing.T) {
	out := renderNode(t, NewContainer("<script>alert(1)</script>"))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
