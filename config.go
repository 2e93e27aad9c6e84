package ruler

// DefaultIndentOffset is the indent step used when Config.IndentOffset is
// left zero.
const DefaultIndentOffset = 4

// Config selects the indentation style a rule table is built for. It is an
// immutable value: table builders are pure functions of it, and changing a
// flag means building a fresh table, never mutating an existing one.
//
// Each Align flag switches one construct between fixed-step indentation
// (false) and vertical alignment to the construct's first element when that
// element shares a line with the opening delimiter (true). Flags only
// substitute rules inside that construct's slot; they never reorder rules
// for unrelated constructs.
type Config struct {
	// IndentOffset is the fixed indent step. Zero means DefaultIndentOffset.
	IndentOffset int

	AlignArguments      bool
	AlignParameters     bool
	AlignTypeParameters bool
	AlignCurly          bool
	AlignAssignments    bool
}

// DefaultConfig returns the default style: 4-column steps, no alignment.
func DefaultConfig() Config {
	return Config{IndentOffset: DefaultIndentOffset}
}

// offset returns the effective indent step.
func (c Config) offset() int {
	if c.IndentOffset <= 0 {
		return DefaultIndentOffset
	}
	return c.IndentOffset
}

// alignSlot builds the rule slot for one bracketed-list construct. The
// aligned variant adds a sibling-on-same-line rule ahead of the fixed-step
// rule, so elements align to the first element only when it hugs the opening
// delimiter; otherwise both variants fall through to parent-bol plus one
// step. Child index 1 is the element after the opening delimiter token.
func alignSlot(kind string, align bool, offset int) []Rule {
	fixed := Rule{When: ParentIs(kind), Anchor: ParentBOL(), Offset: offset}
	if !align {
		return []Rule{fixed}
	}
	return []Rule{
		{When: SiblingOnLine(kind, 1), Anchor: FirstSibling(), Offset: 0},
		fixed,
	}
}
