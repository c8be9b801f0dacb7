package dnm

// Kind distinguishes the node variants the builder cares about. Anything
// that is not character data (comments, doctypes, the document node itself)
// reports KindOther and is treated like an element with no matching rules.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindOther
)

// Node is the surface the builder consumes from an XML or HTML tree
// library. Implementations are thin wrappers around the library's native
// node handles; see the htmltree and xmltree packages.
//
// A Node must stay readable for the lifetime of any DNM built from it.
type Node interface {
	// Kind reports whether this is character data, an element, or
	// something else.
	Kind() Kind

	// Name returns the tag name for elements. For other kinds the result
	// is implementation-defined and only used for diagnostics.
	Name() string

	// Content returns the text of a character-data node, and "" otherwise.
	Content() string

	// Attr returns the value of the named attribute, or "" if the node has
	// no such attribute.
	Attr(name string) string

	// FirstChild and NextSibling drive the traversal. Both return nil at
	// the end of their axis.
	FirstChild() Node
	NextSibling() Node

	// PrevSibling returns the preceding sibling, or nil. The builder never
	// calls it; consumers that relate adjacent nodes (such as the
	// reference-word statistics) do.
	PrevSibling() Node

	// ID returns the node's stable identity token. Two Nodes wrapping the
	// same underlying node must return equal IDs, and no two distinct
	// nodes of the same tree may share one.
	ID() NodeID
}

// NodeID is an opaque, comparable identity token for a node. Adapters build
// it from the native node handle (typically a pointer), never from node
// structure, so identity survives wrapper re-creation.
type NodeID struct {
	key any
}

// MakeNodeID wraps a native node handle as a NodeID. The handle must be
// comparable and unique per node; a pointer to the library's node struct is
// the usual choice.
func MakeNodeID(key any) NodeID {
	return NodeID{key: key}
}
