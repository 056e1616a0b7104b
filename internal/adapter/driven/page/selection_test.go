package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseString(src)
	require.NoError(t, err)
	return doc
}

func mustRender(t *testing.T, doc *Document) string {
	t.Helper()
	out, err := doc.Render()
	require.NoError(t, err)
	return out
}

func TestSelect_WithinOneTextNode(t *testing.T) {
	doc := mustParse(t, `<p id="a">Hello brave world</p>`)

	text, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 6, EndOffset: 11})

	require.NoError(t, err)
	assert.Equal(t, "brave", text)
	_, ok := doc.Selection()
	assert.True(t, ok)
}

func TestSelect_AcrossElements(t *testing.T) {
	doc := mustParse(t, `<p id="a">Hello <b>brave</b> world</p><p id="b">Second para</p>`)

	text, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 6, EndSelector: "#b", EndOffset: 6})

	require.NoError(t, err)
	assert.Equal(t, "brave worldSecond", text)
}

func TestSelect_ReversedBoundsAreOrdered(t *testing.T) {
	doc := mustParse(t, `<p id="a">abcdef</p>`)

	text, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 4, EndOffset: 1})

	require.NoError(t, err)
	assert.Equal(t, "bcd", text)
}

func TestSelect_MultibyteOffsets(t *testing.T) {
	doc := mustParse(t, `<p id="a">가나다라</p>`)

	text, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 1, EndOffset: 3})

	require.NoError(t, err)
	assert.Equal(t, "나다", text)
}

func TestSelect_Errors(t *testing.T) {
	doc := mustParse(t, `<p id="a">short</p>`)

	_, err := doc.Select(SelectionSpec{StartSelector: "#missing", EndOffset: 1})
	assert.ErrorIs(t, err, ErrSelectorNotFound)

	_, err = doc.Select(SelectionSpec{StartSelector: "#a", EndOffset: 99})
	assert.Error(t, err)

	_, err = doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: -1, EndOffset: 2})
	assert.Error(t, err)

	_, ok := doc.Selection()
	assert.False(t, ok, "failed selections must not leave a range behind")
}

func TestDeleteContents_SameTextNode(t *testing.T) {
	doc := mustParse(t, `<p id="a">Hello brave world</p>`)
	_, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 6, EndOffset: 12})
	require.NoError(t, err)

	r, _ := doc.Selection()
	r.DeleteContents()

	assert.True(t, r.Collapsed())
	assert.Contains(t, mustRender(t, doc), `<p id="a">Hello world</p>`)
}

func TestDeleteContents_RemovesContainedNodes(t *testing.T) {
	doc := mustParse(t, `<p id="a">one</p><p id="m">middle</p><p id="b">two</p>`)
	text, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 1, EndSelector: "#b", EndOffset: 2})
	require.NoError(t, err)
	assert.Equal(t, "nemiddletw", text)

	r, _ := doc.Selection()
	r.DeleteContents()

	out := mustRender(t, doc)
	assert.Contains(t, out, `<p id="a">o</p><p id="b">o</p>`)
	assert.NotContains(t, out, "middle")
}

func TestDeleteContents_CollapsedIsNoop(t *testing.T) {
	doc := mustParse(t, `<p id="a">abc</p>`)
	_, err := doc.Select(SelectionSpec{StartSelector: "#a", StartOffset: 1, EndOffset: 1})
	require.NoError(t, err)

	r, _ := doc.Selection()
	r.DeleteContents()

	assert.Contains(t, mustRender(t, doc), `<p id="a">abc</p>`)
}
