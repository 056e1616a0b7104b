package page

import (
	"strings"

	"golang.org/x/net/html"
)

// Boundary is a point in the document: a rune offset into a text node, or a
// child index into any other node.
type Boundary struct {
	Node   *html.Node
	Offset int
}

// Range is a span between two boundary points, with DOM Range semantics for
// deleting its contents and inserting a node at its start.
type Range struct {
	Start Boundary
	End   Boundary
}

// Collapsed reports whether the range is empty.
func (r *Range) Collapsed() bool {
	return r.Start.Node == r.End.Node && r.Start.Offset == r.End.Offset
}

// Text returns the text content spanned by the range.
func (r *Range) Text() string {
	var b strings.Builder
	for n := range textNodes(root(r.Start.Node)) {
		length := nodeLength(n)
		if compareBoundary(Boundary{n, 0}, r.End) >= 0 {
			break
		}
		if compareBoundary(Boundary{n, length}, r.Start) <= 0 {
			continue
		}

		from, to := 0, length
		if n == r.Start.Node {
			from = r.Start.Offset
		}
		if n == r.End.Node {
			to = r.End.Offset
		}
		runes := []rune(n.Data)
		b.WriteString(string(runes[from:to]))
	}
	return b.String()
}

// DeleteContents removes everything inside the range and collapses it to the
// point where the contents were.
func (r *Range) DeleteContents() {
	if r.Collapsed() {
		return
	}

	start, end := r.Start, r.End

	if start.Node == end.Node && start.Node.Type == html.TextNode {
		runes := []rune(start.Node.Data)
		start.Node.Data = string(runes[:start.Offset]) + string(runes[end.Offset:])
		r.End = start
		return
	}

	newPoint := start
	if !isInclusiveAncestor(start.Node, end.Node) {
		ref := start.Node
		for ref.Parent != nil && !isInclusiveAncestor(ref.Parent, end.Node) {
			ref = ref.Parent
		}
		newPoint = Boundary{Node: ref.Parent, Offset: childIndex(ref) + 1}
	}

	common := commonAncestor(start.Node, end.Node)
	var doomed []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r.contains(c) {
				doomed = append(doomed, c)
				continue
			}
			collect(c)
		}
	}
	collect(common)

	if start.Node.Type == html.TextNode {
		runes := []rune(start.Node.Data)
		start.Node.Data = string(runes[:start.Offset])
	}
	if end.Node.Type == html.TextNode {
		runes := []rune(end.Node.Data)
		end.Node.Data = string(runes[end.Offset:])
	}

	for _, n := range doomed {
		n.Parent.RemoveChild(n)
	}

	r.Start, r.End = newPoint, newPoint
}

// InsertNode inserts n at the start of the range, splitting a text node if the
// start falls inside one.
func (r *Range) InsertNode(n *html.Node) {
	start := r.Start

	if start.Node.Type == html.TextNode {
		parent := start.Node.Parent
		runes := []rune(start.Node.Data)
		head, tail := string(runes[:start.Offset]), string(runes[start.Offset:])

		start.Node.Data = head
		ref := start.Node.NextSibling
		if tail != "" {
			split := &html.Node{Type: html.TextNode, Data: tail}
			parent.InsertBefore(split, ref)
			ref = split
		}
		parent.InsertBefore(n, ref)
		return
	}

	parent := start.Node
	parent.InsertBefore(n, childAt(parent, start.Offset))
}

// contains reports whether n lies entirely inside the range.
func (r *Range) contains(n *html.Node) bool {
	return compareBoundary(Boundary{n, 0}, r.Start) > 0 &&
		compareBoundary(Boundary{n, nodeLength(n)}, r.End) < 0
}

// compareBoundary returns -1, 0 or 1 as a is before, equal to, or after b.
func compareBoundary(a, b Boundary) int {
	if a.Node == b.Node {
		return cmpInt(a.Offset, b.Offset)
	}

	if isInclusiveAncestor(a.Node, b.Node) {
		child := b.Node
		for child.Parent != a.Node {
			child = child.Parent
		}
		if childIndex(child) < a.Offset {
			return 1
		}
		return -1
	}

	if isInclusiveAncestor(b.Node, a.Node) {
		return -compareBoundary(b, a)
	}

	return comparePaths(path(a.Node), path(b.Node))
}

// nodeLength is the rune count of a text node or the child count otherwise.
func nodeLength(n *html.Node) int {
	if n.Type == html.TextNode || n.Type == html.CommentNode {
		return len([]rune(n.Data))
	}
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

func isInclusiveAncestor(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

func commonAncestor(a, b *html.Node) *html.Node {
	for n := a; n != nil; n = n.Parent {
		if isInclusiveAncestor(n, b) {
			return n
		}
	}
	return nil
}

func root(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func childIndex(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}

// childAt returns the child at index i, or nil when i is past the last child.
func childAt(parent *html.Node, i int) *html.Node {
	c := parent.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

// path lists the child indices leading from the root to n.
func path(n *html.Node) []int {
	var p []int
	for ; n.Parent != nil; n = n.Parent {
		p = append(p, childIndex(n))
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

func comparePaths(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmpInt(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
