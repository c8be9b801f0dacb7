// Package xmltree adapts github.com/beevik/etree documents to the dnm.Node
// surface. This is the adapter for XHTML/XML renditions of documents, where
// the stricter XML parse is preferable to HTML5 error recovery.
package xmltree

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/kwarc/llamapun/dnm"
)

// ErrNoRoot is returned when a parsed document has no root element.
var ErrNoRoot = errors.New("xmltree: document has no root element")

// node wraps an etree token together with its position among its parent's
// children, which is what drives the sibling axes. Identity lives in the
// token pointer.
type node struct {
	tok    etree.Token
	parent *etree.Element
	idx    int
}

// Wrap exposes an element (usually a document root) as a dnm.Node.
// Wrap(nil) returns nil. A wrapped root reports no siblings.
func Wrap(root *etree.Element) dnm.Node {
	if root == nil {
		return nil
	}
	return node{tok: root, idx: -1}
}

// Parse reads an XML document and returns its root element wrapped for DNM
// building.
func Parse(r io.Reader) (dnm.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xmltree: parse: %w", err)
	}
	return wrapRoot(doc)
}

// ParseString is Parse over a literal document.
func ParseString(s string) (dnm.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("xmltree: parse: %w", err)
	}
	return wrapRoot(doc)
}

// ParseFile is Parse over the contents of path.
func ParseFile(path string) (dnm.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("xmltree: %w", err)
	}
	return wrapRoot(doc)
}

func wrapRoot(doc *etree.Document) (dnm.Node, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return Wrap(root), nil
}

func (w node) Kind() dnm.Kind {
	switch w.tok.(type) {
	case *etree.Element:
		return dnm.KindElement
	case *etree.CharData:
		return dnm.KindText
	default:
		return dnm.KindOther
	}
}

func (w node) Name() string {
	if el, ok := w.tok.(*etree.Element); ok {
		return el.Tag
	}
	return ""
}

func (w node) Content() string {
	if cd, ok := w.tok.(*etree.CharData); ok {
		return cd.Data
	}
	return ""
}

func (w node) Attr(name string) string {
	if el, ok := w.tok.(*etree.Element); ok {
		return el.SelectAttrValue(name, "")
	}
	return ""
}

func (w node) FirstChild() dnm.Node {
	el, ok := w.tok.(*etree.Element)
	if !ok || len(el.Child) == 0 {
		return nil
	}
	return node{tok: el.Child[0], parent: el, idx: 0}
}

func (w node) NextSibling() dnm.Node {
	if w.parent == nil || w.idx+1 >= len(w.parent.Child) {
		return nil
	}
	return node{tok: w.parent.Child[w.idx+1], parent: w.parent, idx: w.idx + 1}
}

func (w node) PrevSibling() dnm.Node {
	if w.parent == nil || w.idx <= 0 {
		return nil
	}
	return node{tok: w.parent.Child[w.idx-1], parent: w.parent, idx: w.idx - 1}
}

func (w node) ID() dnm.NodeID { return dnm.MakeNodeID(w.tok) }
