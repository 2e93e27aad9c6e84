package ruler

// Point is a zero-based source position.
type Point struct {
	Row int
	Col int
}

// before reports whether p is strictly before q in source order.
func (p Point) before(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Node is a borrowed handle into a concrete syntax tree owned by the host
// parser. Implementations wrap whatever tree the host maintains (see
// internal/lang for the tree-sitter adapter). A Node is only valid for the
// duration of one indentation query; the host may reparse between queries,
// invalidating all handles.
type Node interface {
	// Kind is the grammar production tag, e.g. "argument_list" or ")".
	Kind() string
	Start() Point
	End() Point
	// Parent returns nil at the tree root.
	Parent() Node
	// Child returns the i-th child including anonymous tokens, or nil when
	// i is out of range.
	Child(i int) Node
	ChildCount() int
	// NamedChild returns the i-th named child, or nil when i is out of range.
	NamedChild(i int) Node
	NamedChildCount() int
}

// Target is the subject of one indentation query: the node that starts the
// line being indented, plus enough context to resolve anchors.
type Target struct {
	// Node is the largest node starting at the line's first non-blank
	// column. Nil when the line is blank.
	Node Node

	// Enclosing is the smallest node covering the query position. It stands
	// in for Node.Parent() on blank lines.
	Enclosing Node

	Source *Source
}

// parent returns the node an anchor's "parent" refers to: the target's parent
// for a normal line, the enclosing covering node for a blank line.
func (t Target) parent() Node {
	if t.Node != nil {
		return t.Node.Parent()
	}
	return t.Enclosing
}

// grandparent returns parent's parent, or nil.
func (t Target) grandparent() Node {
	p := t.parent()
	if p == nil {
		return nil
	}
	return p.Parent()
}

// FindTarget selects the Target for the given row. For a non-blank line it
// locates the leaf at the line's first non-blank column and ascends while the
// parent starts at the same point, yielding the largest node that begins the
// line. For a blank line it records only the smallest covering node.
func FindTarget(root Node, src *Source, row int) Target {
	col := src.BOL(row)
	if col < 0 {
		return Target{Enclosing: nodeAt(root, Point{Row: row}), Source: src}
	}

	p := Point{Row: row, Col: col}
	leaf := nodeAt(root, p)
	if leaf == nil {
		return Target{Enclosing: root, Source: src}
	}

	n := leaf
	for n.Parent() != nil && n.Parent().Start() == n.Start() {
		n = n.Parent()
	}
	return Target{Node: n, Enclosing: leaf, Source: src}
}

// nodeAt descends from root to the smallest node whose span covers p.
// Returns root itself when p lies outside every child (or outside root,
// as happens for blank lines past the last token).
func nodeAt(root Node, p Point) Node {
	if root == nil || !covers(root, p) {
		return root
	}
	n := root
descend:
	for {
		for i := 0; i < n.ChildCount(); i++ {
			c := n.Child(i)
			if c != nil && covers(c, p) {
				n = c
				continue descend
			}
		}
		return n
	}
}

// covers reports whether n's span [start, end) contains p.
func covers(n Node, p Point) bool {
	return !p.before(n.Start()) && p.before(n.End())
}

// nearestAncestor walks strict ancestors of n looking for the given kind.
// Returns nil when no such ancestor exists (or n is nil).
func nearestAncestor(n Node, kind string) Node {
	if n == nil {
		return nil
	}
	for a := n.Parent(); a != nil; a = a.Parent() {
		if a.Kind() == kind {
			return a
		}
	}
	return nil
}
