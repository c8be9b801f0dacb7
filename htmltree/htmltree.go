// Package htmltree adapts golang.org/x/net/html node trees to the dnm.Node
// surface. This is the adapter used for HTML5 documents as produced by
// LaTeXML conversions of scientific papers.
package htmltree

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"github.com/kwarc/llamapun/dnm"
)

// node wraps a single *html.Node. Wrappers are created on the fly during
// traversal; identity lives in the underlying pointer, not the wrapper.
type node struct {
	n *html.Node
}

// Wrap exposes an html node as a dnm.Node. Wrap(nil) returns nil.
func Wrap(n *html.Node) dnm.Node {
	if n == nil {
		return nil
	}
	return node{n: n}
}

// Unwrap returns the underlying *html.Node of a node produced by this
// package, or false for nodes from another adapter.
func Unwrap(n dnm.Node) (*html.Node, bool) {
	w, ok := n.(node)
	if !ok {
		return nil, false
	}
	return w.n, true
}

// Parse reads an HTML5 document and returns its document node wrapped for
// DNM building. Parsing errors come straight from the html package.
func Parse(r io.Reader) (dnm.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmltree: parse: %w", err)
	}
	return Wrap(root), nil
}

// ParseFile is Parse over the contents of path.
func ParseFile(path string) (dnm.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("htmltree: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (w node) Kind() dnm.Kind {
	switch w.n.Type {
	case html.TextNode:
		return dnm.KindText
	case html.ElementNode:
		return dnm.KindElement
	default:
		return dnm.KindOther
	}
}

func (w node) Name() string {
	switch w.n.Type {
	case html.ElementNode:
		return w.n.Data
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	default:
		return ""
	}
}

func (w node) Content() string {
	if w.n.Type == html.TextNode {
		return w.n.Data
	}
	return ""
}

func (w node) Attr(name string) string {
	for _, a := range w.n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (w node) FirstChild() dnm.Node  { return Wrap(w.n.FirstChild) }
func (w node) NextSibling() dnm.Node { return Wrap(w.n.NextSibling) }
func (w node) PrevSibling() dnm.Node { return Wrap(w.n.PrevSibling) }

func (w node) ID() dnm.NodeID { return dnm.MakeNodeID(w.n) }
