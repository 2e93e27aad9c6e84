package ruler

// Anchor resolves the column an indentation offset is measured from. Like
// predicates, anchors are total: a missing parent or sibling resolves to
// column 0 rather than failing.
type Anchor interface {
	Column(t Target) int
}

// ParentColumn anchors at the parent node's own start column.
func ParentColumn() Anchor { return parentColumn{} }

type parentColumn struct{}

func (parentColumn) Column(t Target) int {
	p := t.parent()
	if p == nil {
		return 0
	}
	return p.Start().Col
}

// ParentBOL anchors at the first non-blank column of the row the parent
// starts on. A parent beginning mid-line (an argument list opening after the
// callee, say) still anchors to the visual start of its line.
func ParentBOL() Anchor { return parentBOL{} }

type parentBOL struct{}

func (parentBOL) Column(t Target) int {
	return bolOf(t, t.parent())
}

// FirstSibling anchors at the column of the parent's first named child.
func FirstSibling() Anchor { return firstSibling{} }

type firstSibling struct{}

func (firstSibling) Column(t Target) int {
	return firstNamedChildCol(t, t.parent())
}

// GrandparentFirstSibling anchors at the column of the grandparent's first
// named child. Used for constructs one level removed from the list they
// align with, like keyword parameters after ";" inside a parameter list.
func GrandparentFirstSibling() Anchor { return grandparentFirstSibling{} }

type grandparentFirstSibling struct{}

func (grandparentFirstSibling) Column(t Target) int {
	return firstNamedChildCol(t, t.grandparent())
}

// GrandparentBOL anchors at the beginning-of-line column of the grandparent.
func GrandparentBOL() Anchor { return grandparentBOL{} }

type grandparentBOL struct{}

func (grandparentBOL) Column(t Target) int {
	return bolOf(t, t.grandparent())
}

// SiblingColumn anchors at the column of the child at the given index of the
// nearest strict ancestor of the given kind. Resolves to 0 when the ancestor
// or the child is missing. Pairs with [SiblingOnLine]: the predicate checks
// that the child shares the ancestor's row, the anchor aligns to it.
func SiblingColumn(ancestorKind string, index int) Anchor {
	return siblingColumn{kind: ancestorKind, index: index}
}

type siblingColumn struct {
	kind  string
	index int
}

func (a siblingColumn) Column(t Target) int {
	anc := nearestAncestor(t.Node, a.kind)
	if anc == nil {
		return 0
	}
	c := anc.Child(a.index)
	if c == nil {
		return 0
	}
	return c.Start().Col
}

// AncestorBOL anchors at the beginning-of-line column of the nearest strict
// ancestor of the given kind. Compound constructs whose internal expressions
// all indent relative to the construct's own line (ternary continuations)
// use this regardless of nesting depth inside the construct.
func AncestorBOL(kind string) Anchor { return ancestorBOL(kind) }

type ancestorBOL string

func (a ancestorBOL) Column(t Target) int {
	return bolOf(t, nearestAncestor(t.Node, string(a)))
}

// ColumnZero anchors at literal column 0.
func ColumnZero() Anchor { return columnZero{} }

type columnZero struct{}

func (columnZero) Column(Target) int { return 0 }

// bolOf returns the beginning-of-line column of n's starting row, falling
// back to n's own column for a blank row and to 0 for a nil node.
func bolOf(t Target, n Node) int {
	if n == nil {
		return 0
	}
	if col := t.Source.BOL(n.Start().Row); col >= 0 {
		return col
	}
	return n.Start().Col
}

// firstNamedChildCol returns the start column of n's first named child,
// falling back to n's beginning of line.
func firstNamedChildCol(t Target, n Node) int {
	if n == nil {
		return 0
	}
	if c := n.NamedChild(0); c != nil {
		return c.Start().Col
	}
	return bolOf(t, n)
}
