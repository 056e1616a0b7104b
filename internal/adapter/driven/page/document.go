// Package page holds the page-context side of the system: a parsed HTML
// document, the user's selection inside it, and the injector that splices a
// translation into that selection.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrSelectorNotFound is returned when a selection targets an element that is
// not in the document.
var ErrSelectorNotFound = errors.New("selector matched no element")

// Document is a live HTML page with at most one selection range.
// It is not safe for concurrent use; a page context owns it.
type Document struct {
	root      *html.Node
	selection *Range
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render serializes the current document.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Find runs a CSS selector against the document.
func (d *Document) Find(selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Find(selector)
}

// Selection returns the active selection range, if any.
func (d *Document) Selection() (*Range, bool) {
	if d.selection == nil {
		return nil, false
	}
	return d.selection, true
}

// SetSelection replaces the active selection. A nil range clears it.
func (d *Document) SetSelection(r *Range) {
	d.selection = r
}

// ClearSelection drops the active selection.
func (d *Document) ClearSelection() {
	d.selection = nil
}

// SelectionSpec addresses a text range by character offsets into the text
// content of elements matched by CSS selectors.
type SelectionSpec struct {
	StartSelector string `json:"start_selector"`
	StartOffset   int    `json:"start_offset"`
	// EndSelector defaults to StartSelector.
	EndSelector string `json:"end_selector,omitempty"`
	EndOffset   int    `json:"end_offset"`
}

// Select resolves target against the document, makes it the active selection,
// and returns the selected text.
func (d *Document) Select(target SelectionSpec) (string, error) {
	start, err := d.resolve(target.StartSelector, target.StartOffset)
	if err != nil {
		return "", fmt.Errorf("resolve start: %w", err)
	}

	endSelector := target.EndSelector
	if endSelector == "" {
		endSelector = target.StartSelector
	}
	end, err := d.resolve(endSelector, target.EndOffset)
	if err != nil {
		return "", fmt.Errorf("resolve end: %w", err)
	}

	if compareBoundary(start, end) > 0 {
		start, end = end, start
	}

	r := &Range{Start: start, End: end}
	d.selection = r
	return r.Text(), nil
}

// resolve finds the boundary point offset characters into the text content of
// the first element matching selector.
func (d *Document) resolve(selector string, offset int) (Boundary, error) {
	sel := d.Find(selector)
	if sel.Length() == 0 {
		return Boundary{}, fmt.Errorf("%w: %q", ErrSelectorNotFound, selector)
	}
	el := sel.Get(0)

	if offset < 0 {
		return Boundary{}, fmt.Errorf("offset %d is negative", offset)
	}

	remaining := offset
	var last *html.Node
	for n := range textNodes(el) {
		length := nodeLength(n)
		if remaining <= length {
			return Boundary{Node: n, Offset: remaining}, nil
		}
		remaining -= length
		last = n
	}

	if last == nil && offset == 0 {
		return Boundary{Node: el, Offset: 0}, nil
	}
	return Boundary{}, fmt.Errorf("offset %d is past the end of %q", offset, selector)
}

// textNodes yields the descendant text nodes of n in tree order.
func textNodes(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(node *html.Node) bool {
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					if !yield(c) {
						return false
					}
					continue
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}
