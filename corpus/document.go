package corpus

import (
	"strings"

	"github.com/kwarc/llamapun/dnm"
	"github.com/kwarc/llamapun/internal/tokenizer"
)

// Document is one corpus file with its parsed tree and DNM. The tree is
// owned by the Document; the DNM and every range derived from it are valid
// as long as the Document is reachable.
type Document struct {
	// Path is the file the document was loaded from.
	Path string

	// Model is the document's DNM, built under the corpus rules.
	Model *dnm.DNM

	root dnm.Node
}

// Root returns the document node the DNM was built from.
func (d *Document) Root() dnm.Node {
	return d.root
}

// Paragraphs returns the ranges of the document's logical paragraphs, the
// elements carrying the ltx_para class. Paragraphs inside skipped subtrees
// have no range and are omitted.
func (d *Document) Paragraphs() []dnm.Range {
	var ranges []dnm.Range
	for _, n := range ElementsWithClass(d.root, "ltx_para") {
		r, err := d.Model.RangeOf(n)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// Sentences returns the sentence ranges of the whole document.
func (d *Document) Sentences() []dnm.Range {
	whole, err := d.Model.Slice(0, len(d.Model.Plaintext()))
	if err != nil {
		return nil
	}
	return Sentences(whole)
}

// RefNodes returns the document's cross-reference elements: span or a
// elements carrying the ltx_ref class.
func (d *Document) RefNodes() []dnm.Node {
	var refs []dnm.Node
	for _, n := range ElementsWithClass(d.root, "ltx_ref") {
		if name := n.Name(); name == "span" || name == "a" {
			refs = append(refs, n)
		}
	}
	return refs
}

// Sentences segments a range into sentence sub-ranges.
func Sentences(r dnm.Range) []dnm.Range {
	return subRanges(r, tokenizer.Sentences(r.Text()))
}

// Words segments a range into word sub-ranges.
func Words(r dnm.Range) []dnm.Range {
	return subRanges(r, tokenizer.Words(r.Text()))
}

func subRanges(r dnm.Range, spans []tokenizer.Span) []dnm.Range {
	ranges := make([]dnm.Range, 0, len(spans))
	for _, s := range spans {
		sub, err := r.DNM().Slice(r.Start+s.Start, r.Start+s.End)
		if err != nil {
			continue
		}
		ranges = append(ranges, sub)
	}
	return ranges
}

// ElementsWithClass collects, in document order, the elements under root
// whose class attribute contains the given token.
func ElementsWithClass(root dnm.Node, class string) []dnm.Node {
	var out []dnm.Node
	var visit func(n dnm.Node)
	visit = func(n dnm.Node) {
		if n.Kind() == dnm.KindElement && hasClassToken(n, class) {
			out = append(out, n)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(root)
	return out
}

func hasClassToken(n dnm.Node, class string) bool {
	for _, token := range strings.Fields(n.Attr("class")) {
		if token == class {
			return true
		}
	}
	return false
}
