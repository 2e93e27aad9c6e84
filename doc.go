// Package ruler computes the indentation column for a line of source code
// from that line's position inside a concrete syntax tree. It is the engine
// behind editor-style reindentation: the host supplies a parsed tree and the
// source text, ruler answers "what column should line N start at".
//
// # Model
//
// Indentation is decided by an ordered rule table. Each [Rule] pairs a
// structural [Predicate] (is this node a closing delimiter, is it inside an
// argument list, is the line blank) with an [Anchor] (which node's column the
// result is measured from) and an integer offset. Rules are tried top to
// bottom; the first predicate that matches wins and the result is
// anchor column + offset. A trailing blank-line rule guarantees every line
// resolves to some column; evaluation never fails.
//
// # Usage
//
// The host parses source text with its own parser and exposes the tree
// through the [Node] interface. Then:
//
//	src := ruler.NewSource(text)
//	table := ruler.JuliaRules(ruler.DefaultConfig())
//	in := ruler.NewIndenter(root, src, table)
//	col := in.ComputeIndent(10)
//
// Node handles are borrowed from the host for the duration of one query and
// must not be retained: the host may reparse between queries.
//
// # Rule tables
//
// [JuliaRules], [PythonRules], and [RubyRules] build tables for the matching
// tree-sitter grammars. Tables are pure functions of a [Config]: alignment
// flags substitute rule variants inside fixed slots without reordering
// unrelated rules, so priorities are stable across configurations. The
// internal/lang package binds the Python and Ruby tables to real grammars for
// the ruler CLI.
package ruler
