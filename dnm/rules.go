package dnm

import "errors"

// ErrInvalidConfiguration is returned by Build when the rule set's flags
// contradict each other, before any of the tree is visited.
var ErrInvalidConfiguration = errors.New("dnm: migrate boundary whitespace requires collapse whitespace")

// ActionKind enumerates the four ways the builder can treat a subtree.
type ActionKind int

const (
	// ActionEnter recurses into the children normally.
	ActionEnter ActionKind = iota
	// ActionNormalize replaces the whole subtree with a fixed token.
	ActionNormalize
	// ActionNormalizeFunc replaces the whole subtree with a token computed
	// from the node.
	ActionNormalizeFunc
	// ActionSkip emits nothing for the whole subtree.
	ActionSkip
)

// Action is what a rule tells the builder to do with a matched element.
// Construct one with Enter, Normalize, NormalizeFunc, or Skip; the zero
// value is Enter.
type Action struct {
	kind  ActionKind
	token string
	fn    func(Node) string
}

// Enter returns the action that traverses a subtree normally. A name rule
// mapping to Enter is not a no-op: it terminates rule resolution before any
// class rules are consulted.
func Enter() Action {
	return Action{kind: ActionEnter}
}

// Normalize returns the action that replaces the matched subtree with token
// in the plaintext. The builder does not descend.
func Normalize(token string) Action {
	return Action{kind: ActionNormalize, token: token}
}

// NormalizeFunc is Normalize with the replacement computed by fn on the
// matched node. fn must not mutate the tree.
func NormalizeFunc(fn func(Node) string) Action {
	return Action{kind: ActionNormalizeFunc, fn: fn}
}

// Skip returns the action that omits the matched subtree entirely. The
// builder does not descend; descendants of a skipped element are not
// indexed.
func Skip() Action {
	return Action{kind: ActionSkip}
}

// Kind reports which of the four variants this action is.
func (a Action) Kind() ActionKind {
	return a.kind
}

// RuleSet configures a DNM build. The zero value enters every element and
// emits text verbatim; Default and Scientific return the two stock
// configurations.
type RuleSet struct {
	// NameRules maps tag names (case-sensitive) to actions.
	NameRules map[string]Action

	// ClassRules maps single class tokens (case-sensitive) to actions.
	// When an element matches several rules, the name rule is consulted
	// first, then the class rules in attribute order; the first match
	// decides. An Enter match terminates resolution rather than falling
	// through to later candidates.
	ClassRules map[string]Action

	// CollapseWhitespace merges every whitespace run, including runs that
	// span text-node boundaries, into a single ' '. Normalization tokens
	// are never collapsed.
	CollapseWhitespace bool

	// WrapTokens surrounds every normalization token with spaces.
	WrapTokens bool

	// MigrateBoundaryWhitespace keeps a whitespace character emitted at
	// the edge of a node's subtree out of that node's recorded range, so
	// the space belongs between nodes rather than inside one. Requires
	// CollapseWhitespace.
	MigrateBoundaryWhitespace bool

	// FoldUnicode maps each text node to its nearest ASCII approximation
	// before emission.
	FoldUnicode bool
}

// Default returns the plain configuration: no tag or class rewrites,
// whitespace collapsing on, everything else off.
func Default() RuleSet {
	return RuleSet{
		NameRules:          map[string]Action{},
		ClassRules:         map[string]Action{},
		CollapseWhitespace: true,
	}
}

// Scientific returns the normalization used for LaTeXML-converted
// mathematical documents: formulas and citations become placeholder tokens,
// tables, headers, footnote apparatus and bibliographies disappear, unicode
// folds to ASCII, and boundary whitespace migrates between nodes.
func Scientific() RuleSet {
	return RuleSet{
		NameRules: map[string]Action{
			"math":  Normalize("MathFormula"),
			"cite":  Normalize("CiteExpression"),
			"table": Skip(),
			"head":  Skip(),
		},
		ClassRules: map[string]Action{
			"ltx_equation":      Normalize("MathFormula"),
			"ltx_equationgroup": Normalize("MathFormula"),
			"ltx_note_mark":     Skip(),
			"ltx_note_outer":    Skip(),
			"ltx_bibliography":  Skip(),
		},
		CollapseWhitespace:        true,
		MigrateBoundaryWhitespace: true,
		FoldUnicode:               true,
	}
}

// validate rejects contradictory flag combinations.
func (rs RuleSet) validate() error {
	if rs.MigrateBoundaryWhitespace && !rs.CollapseWhitespace {
		return ErrInvalidConfiguration
	}
	return nil
}
