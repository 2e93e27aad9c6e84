package lang

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/ruler"
)

// Tree owns a parsed tree-sitter tree. Node handles obtained through Root
// are invalid after Close.
type Tree struct {
	tree *sitter.Tree
}

// Root returns the tree root adapted to the engine's Node interface.
func (t *Tree) Root() ruler.Node {
	return wrap(t.tree.RootNode())
}

// Close releases the tree's memory.
func (t *Tree) Close() {
	t.tree.Close()
}

// Parse parses src with the grammar registered for the language. The parser
// itself is created and closed per call; trees are cheap and queries are
// line-at-a-time, so there is no parser reuse across calls.
func Parse(ctx context.Context, src []byte, language string) (*Tree, error) {
	grammar, ok := GrammarFor(language)
	if !ok {
		return nil, fmt.Errorf("no grammar for language %q", language)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	return &Tree{tree: tree}, nil
}

// node adapts *sitter.Node to ruler.Node.
type node struct {
	n *sitter.Node
}

// wrap returns a typed nil-free ruler.Node for n.
func wrap(n *sitter.Node) ruler.Node {
	if n == nil {
		return nil
	}
	return node{n: n}
}

func (a node) Kind() string {
	return a.n.Type()
}

func (a node) Start() ruler.Point {
	p := a.n.StartPoint()
	return ruler.Point{Row: int(p.Row), Col: int(p.Column)}
}

func (a node) End() ruler.Point {
	p := a.n.EndPoint()
	return ruler.Point{Row: int(p.Row), Col: int(p.Column)}
}

func (a node) Parent() ruler.Node {
	return wrap(a.n.Parent())
}

func (a node) Child(i int) ruler.Node {
	if i < 0 || i >= a.ChildCount() {
		return nil
	}
	return wrap(a.n.Child(i))
}

func (a node) ChildCount() int {
	return int(a.n.ChildCount())
}

func (a node) NamedChild(i int) ruler.Node {
	if i < 0 || i >= a.NamedChildCount() {
		return nil
	}
	return wrap(a.n.NamedChild(i))
}

func (a node) NamedChildCount() int {
	return int(a.n.NamedChildCount())
}
