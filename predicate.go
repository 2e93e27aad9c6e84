package ruler

// Predicate is a pure structural query over a Target. Predicates never fail:
// a missing parent, ancestor, or sibling makes the predicate false, not an
// error. Cost is bounded by tree depth; no predicate scans the whole tree.
type Predicate interface {
	Match(t Target) bool
}

// KindIs matches a node whose kind equals k.
func KindIs(k string) Predicate { return kindIs(k) }

type kindIs string

func (p kindIs) Match(t Target) bool {
	return t.Node != nil && t.Node.Kind() == string(p)
}

// KindIn matches a node whose kind is any of ks.
func KindIn(ks ...string) Predicate { return kindIn(kindSet(ks)) }

type kindIn map[string]bool

func (p kindIn) Match(t Target) bool {
	return t.Node != nil && p[t.Node.Kind()]
}

// ParentIs matches a node whose parent has kind k. False at the tree root
// and on blank lines.
func ParentIs(k string) Predicate { return parentIs(k) }

type parentIs string

func (p parentIs) Match(t Target) bool {
	if t.Node == nil {
		return false
	}
	parent := t.Node.Parent()
	return parent != nil && parent.Kind() == string(p)
}

// ParentIn matches a node whose parent kind is any of ks.
func ParentIn(ks ...string) Predicate { return parentIn(kindSet(ks)) }

type parentIn map[string]bool

func (p parentIn) Match(t Target) bool {
	if t.Node == nil {
		return false
	}
	parent := t.Node.Parent()
	return parent != nil && p[parent.Kind()]
}

// AncestorIs matches a node with a strict ancestor of kind k, at any depth.
func AncestorIs(k string) Predicate { return ancestorIs(k) }

type ancestorIs string

func (p ancestorIs) Match(t Target) bool {
	return nearestAncestor(t.Node, string(p)) != nil
}

// SiblingOnLine matches when the nearest strict ancestor of the given kind
// has a child at index that starts on the same row as the ancestor itself.
// This is the "does the first element hug the opening delimiter" test: for
// f(a, on one line, the child after "(" shares the ancestor's row, so later
// arguments align to it rather than taking a fixed indent step.
func SiblingOnLine(ancestorKind string, index int) Predicate {
	return siblingOnLine{kind: ancestorKind, index: index}
}

type siblingOnLine struct {
	kind  string
	index int
}

func (p siblingOnLine) Match(t Target) bool {
	anc := nearestAncestor(t.Node, p.kind)
	if anc == nil {
		return false
	}
	s := anc.Child(p.index)
	return s != nil && s.Start().Row == anc.Start().Row
}

// OnBlankLine matches when the query position has no node: a blank or
// whitespace-only line. Placed last in every table as part of the total
// fallback.
func OnBlankLine() Predicate { return onBlankLine{} }

type onBlankLine struct{}

func (onBlankLine) Match(t Target) bool { return t.Node == nil }

// allOf matches when every predicate matches. Used by table builders to
// scope a rule more tightly than any single predicate can.
func allOf(ps ...Predicate) Predicate { return conjunction(ps) }

type conjunction []Predicate

func (c conjunction) Match(t Target) bool {
	for _, p := range c {
		if !p.Match(t) {
			return false
		}
	}
	return true
}

func kindSet(ks []string) map[string]bool {
	set := make(map[string]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return set
}
