package ruler

// Synthetic syntax trees for unit tests. The engine treats the parser as an
// external collaborator behind the Node interface, so tests build exactly
// the tree shapes they need instead of depending on a grammar binding (the
// internal/lang tests cover real parses).

type tnode struct {
	kind     string
	anon     bool
	start    Point
	end      Point
	parent   *tnode
	children []*tnode
}

func (n *tnode) Kind() string { return n.kind }
func (n *tnode) Start() Point { return n.start }
func (n *tnode) End() Point   { return n.end }

func (n *tnode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *tnode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *tnode) ChildCount() int { return len(n.children) }

func (n *tnode) NamedChild(i int) Node {
	for _, c := range n.children {
		if c.anon {
			continue
		}
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

func (n *tnode) NamedChildCount() int {
	count := 0
	for _, c := range n.children {
		if !c.anon {
			count++
		}
	}
	return count
}

// branch builds a named interior node spanning [start, end) and links the
// children's parent pointers.
func branch(kind string, start, end Point, children ...*tnode) *tnode {
	n := &tnode{kind: kind, start: start, end: end, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// leaf builds a named leaf node of the given width on one row.
func leaf(kind string, row, col, width int) *tnode {
	return &tnode{
		kind:  kind,
		start: Point{Row: row, Col: col},
		end:   Point{Row: row, Col: col + width},
	}
}

// tok builds an anonymous token node whose kind is its text.
func tok(text string, row, col int) *tnode {
	return &tnode{
		kind:  text,
		anon:  true,
		start: Point{Row: row, Col: col},
		end:   Point{Row: row, Col: col + len(text)},
	}
}

// target runs FindTarget over a synthetic tree and source text.
func target(root *tnode, src string, row int) Target {
	return FindTarget(root, NewSource([]byte(src)), row)
}

func pt(row, col int) Point { return Point{Row: row, Col: col} }

// callTree models the Julia fragment
//
//	f(a,
//	  b)
//
// with the first argument hugging the opening parenthesis.
func callTree() (*tnode, string) {
	src := "f(a,\n  b)"
	root := branch("source_file", pt(0, 0), pt(1, 4),
		branch("call_expression", pt(0, 0), pt(1, 4),
			leaf("identifier", 0, 0, 1),
			branch("argument_list", pt(0, 1), pt(1, 4),
				tok("(", 0, 1),
				leaf("identifier", 0, 2, 1),
				tok(",", 0, 3),
				leaf("identifier", 1, 2, 1),
				tok(")", 1, 3),
			),
		),
	)
	return root, src
}

// brokenCallTree models the same call with the first argument dropped to
// its own line:
//
//	f(
//	    a,
//	    b)
func brokenCallTree() (*tnode, string) {
	src := "f(\n    a,\n    b)"
	root := branch("source_file", pt(0, 0), pt(2, 7),
		branch("call_expression", pt(0, 0), pt(2, 7),
			leaf("identifier", 0, 0, 1),
			branch("argument_list", pt(0, 1), pt(2, 7),
				tok("(", 0, 1),
				leaf("identifier", 1, 4, 1),
				tok(",", 1, 5),
				leaf("identifier", 2, 4, 1),
				tok(")", 2, 5),
			),
		),
	)
	return root, src
}

// funcTree models
//
//	function f(x)
//	    y = 1
//
//	    y
//	end
func funcTree() (*tnode, string) {
	src := "function f(x)\n    y = 1\n\n    y\nend"
	root := branch("source_file", pt(0, 0), pt(4, 3),
		branch("function_definition", pt(0, 0), pt(4, 3),
			tok("function", 0, 0),
			leaf("identifier", 0, 9, 1),
			branch("parameter_list", pt(0, 10), pt(0, 13),
				tok("(", 0, 10),
				leaf("identifier", 0, 11, 1),
				tok(")", 0, 12),
			),
			branch("assignment", pt(1, 4), pt(1, 9),
				leaf("identifier", 1, 4, 1),
				tok("=", 1, 6),
				leaf("integer_literal", 1, 8, 1),
			),
			leaf("identifier", 3, 4, 1),
			tok("end", 4, 0),
		),
	)
	return root, src
}

// condTree models
//
//	if x
//	    a
//	elseif y
//	    b
//	else
//	    c
//	end
func condTree() (*tnode, string) {
	src := "if x\n    a\nelseif y\n    b\nelse\n    c\nend"
	root := branch("source_file", pt(0, 0), pt(6, 3),
		branch("if_statement", pt(0, 0), pt(6, 3),
			tok("if", 0, 0),
			leaf("identifier", 0, 3, 1),
			leaf("identifier", 1, 4, 1),
			branch("elseif_clause", pt(2, 0), pt(4, 0),
				tok("elseif", 2, 0),
				leaf("identifier", 2, 7, 1),
				leaf("identifier", 3, 4, 1),
			),
			branch("else_clause", pt(4, 0), pt(6, 0),
				tok("else", 4, 0),
				leaf("identifier", 5, 4, 1),
			),
			tok("end", 6, 0),
		),
	)
	return root, src
}
