// Package dnm builds Document Narrative Models: linear plaintext
// projections of XML/HTML trees that keep a bidirectional mapping between
// plaintext byte offsets and the originating nodes.
//
// A DNM is produced by a single deterministic depth-first walk under a
// RuleSet. Elements can be entered, replaced by a placeholder token, or
// skipped entirely; whitespace runs can be collapsed and pushed to sit
// between nodes rather than inside them. The resulting plaintext is what
// downstream NLP tooling consumes, and the node index is how its results
// find their way back into the tree.
//
// All offsets in this package are byte offsets into the UTF-8 plaintext.
package dnm

import (
	"errors"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

var (
	// ErrNilRoot is returned by Build when given no root node.
	ErrNilRoot = errors.New("dnm: nil root node")

	// ErrNotIndexed is returned by RangeOf for nodes the build never
	// visited, such as nodes outside the root's subtree or descendants of
	// a skipped element.
	ErrNotIndexed = errors.New("dnm: node not indexed")

	// ErrOutOfBounds is returned by Slice for offsets outside the
	// plaintext.
	ErrOutOfBounds = errors.New("dnm: offsets out of bounds")
)

// span is a half-open [start, end) byte interval into the plaintext.
type span struct {
	start, end int
}

// DNM is the plaintext rendition of a tree together with the index mapping
// each visited node to the plaintext interval it produced. A DNM is
// immutable once built and safe for concurrent readers, but it borrows the
// underlying tree: it must not outlive the tree, and the tree must not be
// mutated while the DNM is in use.
type DNM struct {
	plaintext string
	rules     RuleSet
	root      Node
	index     map[NodeID]span
}

// Build walks the tree under root and returns its DNM. The tree itself is
// never modified. Build fails only on a nil root or a contradictory rule
// set; the walk itself is total over well-formed trees.
func Build(root Node, rules RuleSet) (*DNM, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}

	b := builder{
		rules: rules,
		index: map[NodeID]span{},
		// Pretend the buffer already ends in whitespace so that no
		// leading whitespace survives collapsing.
		pendingWhitespace: true,
	}
	b.walk(root)

	return &DNM{
		plaintext: b.buf.String(),
		rules:     rules,
		root:      root,
		index:     b.index,
	}, nil
}

// Plaintext returns the full plaintext. Offsets handed out by RangeOf and
// Slice index into exactly this string.
func (d *DNM) Plaintext() string {
	return d.plaintext
}

// Root returns the node the build started from.
func (d *DNM) Root() Node {
	return d.root
}

// Rules returns the rule set the DNM was built with.
func (d *DNM) Rules() RuleSet {
	return d.rules
}

// RangeOf returns the plaintext range recorded for node during the build,
// or ErrNotIndexed if the node was never visited.
func (d *DNM) RangeOf(node Node) (Range, error) {
	s, ok := d.index[node.ID()]
	if !ok {
		return Range{}, ErrNotIndexed
	}
	return Range{Start: s.start, End: s.end, dnm: d}, nil
}

// Slice returns an arbitrary range over the plaintext. It is how consumers
// that segment a node's text further (sentences, words) mint sub-ranges.
func (d *DNM) Slice(start, end int) (Range, error) {
	if start < 0 || start > end || end > len(d.plaintext) {
		return Range{}, ErrOutOfBounds
	}
	return Range{Start: start, End: end, dnm: d}, nil
}

// builder carries the walk state. The whitespace flag is deliberately local
// to one build; two builds never share state.
type builder struct {
	rules RuleSet
	buf   strings.Builder
	index map[NodeID]span

	// pendingWhitespace records that the last emitted character is
	// whitespace, so the next whitespace run collapses into it.
	pendingWhitespace bool
}

func (b *builder) walk(n Node) {
	start := b.buf.Len()

	if n.Kind() == KindText {
		b.text(n, start)
		return
	}

	// Only elements consult the rule set; other kinds are simply entered.
	action := Enter()
	if n.Kind() == KindElement {
		action = b.resolve(n)
	}
	switch action.kind {
	case ActionNormalize:
		b.token(action.token)
		b.record(n, start)
		return
	case ActionNormalizeFunc:
		b.token(action.fn(n))
		b.record(n, start)
		return
	case ActionSkip:
		b.record(n, start)
		return
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.walk(c)
	}
	b.record(n, start)
}

// resolve finds the action for an element. The tag-name rule dominates;
// class rules are consulted in attribute order. Note that resolution stops
// at the first rule found even when that rule is Enter: a name rule mapped
// to Enter shields the element from its class rules instead of falling
// through to them.
func (b *builder) resolve(n Node) Action {
	if action, ok := b.rules.NameRules[n.Name()]; ok {
		return action
	}
	for _, class := range strings.Fields(n.Attr("class")) {
		if action, ok := b.rules.ClassRules[class]; ok {
			return action
		}
	}
	return Enter()
}

// text emits a character-data node and records its range. Under boundary
// migration the recorded range is narrowed past whitespace emitted at
// either edge of the node's own content.
func (b *builder) text(n Node, start int) {
	content := n.Content()
	if b.rules.FoldUnicode {
		content = unidecode.Unidecode(content)
	}

	if b.rules.CollapseWhitespace {
		leading := true
		for _, c := range content {
			if unicode.IsSpace(c) {
				if b.pendingWhitespace {
					continue
				}
				b.buf.WriteByte(' ')
				b.pendingWhitespace = true
				if b.rules.MigrateBoundaryWhitespace && leading {
					start++
				}
			} else {
				b.buf.WriteRune(c)
				b.pendingWhitespace = false
				leading = false
			}
		}
	} else {
		b.buf.WriteString(content)
	}

	b.record(n, start)
}

// token emits a normalization token. Tokens count as non-whitespace unless
// wrapping is on, in which case the trailing wrap space doubles as pending
// whitespace for whatever follows.
func (b *builder) token(tok string) {
	if b.rules.WrapTokens {
		if !b.pendingWhitespace || !b.rules.CollapseWhitespace {
			b.buf.WriteByte(' ')
		}
		b.buf.WriteString(tok)
		b.buf.WriteByte(' ')
		b.pendingWhitespace = true
		return
	}
	b.buf.WriteString(tok)
	b.pendingWhitespace = false
}

// record stores the node's half-open range. A trailing space emitted during
// the node's subtree stays out of the range under boundary migration.
func (b *builder) record(n Node, start int) {
	end := b.buf.Len()
	if b.rules.MigrateBoundaryWhitespace && b.pendingWhitespace && end > start {
		end--
	}
	b.index[n.ID()] = span{start: start, end: end}
}
