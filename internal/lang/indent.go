package lang

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jward/ruler"
)

// Reindent rewrites the leading whitespace of every line of src to the
// column the language's rule table computes for it. Lines are processed top
// to bottom with a reparse between lines: a line's anchors must see the
// corrected columns of the lines above it, exactly as they would under
// editor keystroke-at-a-time indentation.
//
// Blank lines are left empty, and a line that starts inside a multi-line
// token (a string literal or heredoc) is left untouched.
func Reindent(ctx context.Context, src []byte, language string, cfg ruler.Config) ([]byte, error) {
	table, ok := RulesFor(language, cfg)
	if !ok {
		return nil, fmt.Errorf("no indent rules for language %q", language)
	}

	lines := bytes.Split(src, []byte{'\n'})
	for row := range lines {
		text := bytes.Join(lines, []byte{'\n'})
		tree, err := Parse(ctx, text, language)
		if err != nil {
			return nil, err
		}

		s := ruler.NewSource(text)
		if s.Blank(row) {
			tree.Close()
			continue
		}

		t := ruler.FindTarget(tree.Root(), s, row)
		if t.Node != nil && t.Node.Start().Row != row {
			// Line begins inside a token spanning multiple rows.
			tree.Close()
			continue
		}
		lines[row] = setIndent(lines[row], ruler.Evaluate(t, table))
		tree.Close()
	}
	return bytes.Join(lines, []byte{'\n'}), nil
}

// Mismatch reports one line whose indentation differs from the computed one.
type Mismatch struct {
	Line int // 1-based
	Have int
	Want int
}

// Check returns the lines of src whose current indentation differs from
// what Reindent would produce.
func Check(ctx context.Context, src []byte, language string, cfg ruler.Config) ([]Mismatch, error) {
	want, err := Reindent(ctx, src, language, cfg)
	if err != nil {
		return nil, err
	}

	haveLines := bytes.Split(src, []byte{'\n'})
	wantLines := bytes.Split(want, []byte{'\n'})

	var mismatches []Mismatch
	for row := range haveLines {
		h := indentWidth(haveLines[row])
		w := indentWidth(wantLines[row])
		if h != w {
			mismatches = append(mismatches, Mismatch{Line: row + 1, Have: h, Want: w})
		}
	}
	return mismatches, nil
}

// setIndent replaces a line's leading whitespace with col spaces.
func setIndent(line []byte, col int) []byte {
	body := bytes.TrimLeft(line, " \t")
	if len(body) == 0 {
		return line
	}
	out := make([]byte, 0, col+len(body))
	for i := 0; i < col; i++ {
		out = append(out, ' ')
	}
	return append(out, body...)
}

// indentWidth counts a line's leading whitespace bytes.
func indentWidth(line []byte) int {
	return len(line) - len(bytes.TrimLeft(line, " \t"))
}
