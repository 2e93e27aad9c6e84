package ruler

// pythonBlocks are the compound statements whose body block takes one indent
// step from the statement's own line.
var pythonBlocks = []string{
	"function_definition", "class_definition",
	"if_statement", "elif_clause", "else_clause",
	"for_statement", "while_statement",
	"try_statement", "except_clause", "finally_clause",
	"with_statement", "match_statement", "case_clause",
}

// pythonLists are bracketed sequences without an alignment flag of their own.
var pythonLists = []string{
	"list", "set", "tuple", "parenthesized_expression",
}

// PythonRules builds the indent rule table for the Python tree-sitter
// grammar. Python's block node starts at its first statement, so statements
// after the first anchor to the block at offset 0 while the first one (which
// ascends to the block node itself) anchors to the compound statement at one
// step. The type-parameter flag has no construct in this grammar and is a
// no-op.
func PythonRules(cfg Config) Table {
	off := cfg.offset()

	table := Table{
		{When: KindIn(")", "]", "}"), Anchor: ParentBOL(), Offset: 0},
		{When: KindIn("elif_clause", "else_clause", "except_clause", "finally_clause"),
			Anchor: ParentBOL(), Offset: 0},
	}

	// Alignment slots: dictionaries stand in for the curly-brace construct.
	table = append(table, alignSlot("dictionary", cfg.AlignCurly, off)...)
	table = append(table, alignSlot("parameters", cfg.AlignParameters, off)...)
	table = append(table, alignSlot("argument_list", cfg.AlignArguments, off)...)

	if cfg.AlignAssignments {
		table = append(table,
			Rule{When: SiblingOnLine("assignment", 2), Anchor: FirstSibling(), Offset: 0})
	}
	table = append(table,
		Rule{When: ParentIs("assignment"), Anchor: ParentBOL(), Offset: off},

		Rule{When: ParentIn(pythonLists...), Anchor: ParentBOL(), Offset: off},
		Rule{When: ParentIs("module"), Anchor: ColumnZero(), Offset: 0},
		Rule{When: ParentIn(pythonBlocks...), Anchor: ParentBOL(), Offset: off},
		Rule{When: ParentIs("block"), Anchor: ParentBOL(), Offset: 0},
		Rule{When: OnBlankLine(), Anchor: ParentBOL(), Offset: 0},
	)

	return table
}
