package ruler

// Rule pairs a predicate with the anchor and offset that apply when it
// matches. Rules are immutable once a table is built.
type Rule struct {
	When   Predicate
	Anchor Anchor
	Offset int
}

// Table is an ordered rule list. Order is priority: evaluation takes the
// first rule whose predicate matches, with no backtracking. Tables are built
// once per configuration change and never mutated afterward; installing a
// new table is a single assignment, so in-flight queries see either the old
// or the new table in full.
type Table []Rule

// Evaluate returns the indentation column for the target: anchor column plus
// offset of the first matching rule, clamped to zero. When no rule matches
// (tables end in a blank-line fallback, so this means an incomplete table)
// the result is column 0. Evaluate never fails.
func Evaluate(t Target, table Table) int {
	for _, r := range table {
		if r.When.Match(t) {
			if col := r.Anchor.Column(t) + r.Offset; col > 0 {
				return col
			}
			return 0
		}
	}
	return 0
}

// Indenter bundles a parsed tree, its source text, and a rule table, and
// answers per-line indentation queries. It holds no other state; the Node
// handles it borrows are only touched inside ComputeIndent.
type Indenter struct {
	root  Node
	src   *Source
	table Table
}

// NewIndenter returns an Indenter over the given tree and source. The table
// is typically built once per configuration via a rules builder such as
// [JuliaRules].
func NewIndenter(root Node, src *Source, table Table) *Indenter {
	return &Indenter{root: root, src: src, table: table}
}

// ComputeIndent returns the indentation column for a row. It always succeeds
// and always returns a non-negative column, including for blank lines and
// rows inside parser error-recovery regions.
func (in *Indenter) ComputeIndent(row int) int {
	return Evaluate(FindTarget(in.root, in.src, row), in.table)
}
