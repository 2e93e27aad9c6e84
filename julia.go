package ruler

// Julia grammar kinds the rule table matches on. Kinds the engine does not
// know simply never match a rule and fall through to the generic fallbacks,
// which keeps the table forward-compatible with grammar evolution.
const (
	juliaSourceFile = "source_file"
	juliaModule     = "module_definition"
	juliaAssignment = "assignment"
	juliaTernary    = "ternary_expression"
	juliaArguments  = "argument_list"
	juliaParameters = "parameter_list"
	juliaKwParams   = "keyword_parameters"
	juliaTypeParams = "type_parameter_list"
	juliaCurly      = "curly_expression"
)

// juliaBlocks are the constructs whose bodies take one indent step from the
// construct's own line.
var juliaBlocks = []string{
	"function_definition", "macro_definition", "struct_definition",
	"if_statement", "elseif_clause", "else_clause",
	"try_statement", "catch_clause", "finally_clause",
	"for_statement", "while_statement", "let_statement",
	"do_clause", "quote_statement", "compound_statement",
}

// juliaLists are bracketed sequences that always take a fixed step; they
// have no alignment flag of their own.
var juliaLists = []string{
	"tuple_expression", "vector_expression", "matrix_expression",
	"parenthesized_expression", "comprehension_expression",
}

// JuliaRules builds the indent rule table for the Julia tree-sitter grammar.
//
// The skeleton is fixed; each alignment flag substitutes variants inside its
// own slot only, so the relative order of unrelated rules is identical for
// every Config. Closing delimiters and clause keywords come first: a closing
// token that is also the last child of a bracketed list must resolve as a
// closing token, and the earlier rule is what guarantees that.
func JuliaRules(cfg Config) Table {
	off := cfg.offset()

	table := Table{
		// Closing delimiters and block enders hug the line that opened them.
		{When: KindIn(")", "]", "}"), Anchor: ParentBOL(), Offset: 0},
		{When: KindIs("end"), Anchor: ParentBOL(), Offset: 0},

		// elseif/else/catch/finally sit at the column of the construct they
		// continue, not one step deeper.
		{When: KindIn("elseif_clause", "else_clause", "catch_clause", "finally_clause"),
			Anchor: ParentBOL(), Offset: 0},
	}

	// Bracketed-list slots: curly braces, type parameters, parameters,
	// arguments. These precede the assignment slot so a list inside an
	// assignment's right-hand side resolves by its own slot, keeping the
	// alignment flags independent of each other.
	//
	// Curly expressions carry their type head inside the node (head, "{",
	// elements, "}"), so the first element sits at child index 2 and the
	// generic slot's index-1 test would always see the brace. The slot gets
	// its own rule pair, scoped to direct children so it cannot capture
	// lines belonging to a list nested inside.
	if cfg.AlignCurly {
		table = append(table, Rule{
			When:   allOf(ParentIs(juliaCurly), SiblingOnLine(juliaCurly, 2)),
			Anchor: SiblingColumn(juliaCurly, 2), Offset: 0})
	}
	table = append(table,
		Rule{When: ParentIs(juliaCurly), Anchor: ParentBOL(), Offset: off})

	// Type parameter lists open with their brace ("{", params, "}"), so the
	// generic index-1 slot applies.
	table = append(table, alignSlot(juliaTypeParams, cfg.AlignTypeParameters, off)...)

	// Parameter slot. Keyword parameters (after ";") live one level below
	// the parameter list, so their anchors reach through the grandparent.
	if cfg.AlignParameters {
		table = append(table,
			Rule{When: ParentIs(juliaKwParams), Anchor: GrandparentFirstSibling(), Offset: 0},
			Rule{When: SiblingOnLine(juliaParameters, 1), Anchor: FirstSibling(), Offset: 0})
	} else {
		table = append(table,
			Rule{When: ParentIs(juliaKwParams), Anchor: GrandparentBOL(), Offset: off})
	}
	table = append(table,
		Rule{When: ParentIs(juliaParameters), Anchor: ParentBOL(), Offset: off})

	table = append(table, alignSlot(juliaArguments, cfg.AlignArguments, off)...)

	// Assignment continuation slot.
	if cfg.AlignAssignments {
		// Child 2 is the right-hand side, past the "=" token.
		table = append(table,
			Rule{When: SiblingOnLine(juliaAssignment, 2), Anchor: FirstSibling(), Offset: 0})
	}
	table = append(table,
		Rule{When: ParentIs(juliaAssignment), Anchor: ParentBOL(), Offset: off})

	table = append(table,
		// Ternary continuations indent from the ternary's own line no
		// matter how deeply the expression nests inside it.
		Rule{When: AncestorIs(juliaTernary), Anchor: AncestorBOL(juliaTernary), Offset: off},

		// Plain bracketed sequences.
		Rule{When: ParentIn(juliaLists...), Anchor: ParentBOL(), Offset: off},

		// Module bodies stay flush with the module keyword, per convention.
		Rule{When: ParentIs(juliaModule), Anchor: ParentBOL(), Offset: 0},

		// Top level.
		Rule{When: ParentIs(juliaSourceFile), Anchor: ColumnZero(), Offset: 0},

		// Block bodies.
		Rule{When: ParentIn(juliaBlocks...), Anchor: ParentBOL(), Offset: off},

		// Blank lines settle at the enclosing node's line. Keeping this rule
		// reachable is what makes the table total.
		Rule{When: OnBlankLine(), Anchor: ParentBOL(), Offset: 0},
	)

	return table
}
