package ruler

// rubyBlocks open a body that takes one indent step from the opening line.
var rubyBlocks = []string{
	"method", "singleton_method", "class", "module",
	"if", "unless", "elsif", "else", "case", "case_match", "when", "in_clause",
	"rescue", "ensure", "while", "until", "for",
	"begin", "do_block", "block", "lambda",
}

// rubyBodies wrap statement sequences and start at their first statement,
// so later statements anchor to them at offset 0.
var rubyBodies = []string{"body_statement", "then"}

// RubyRules builds the indent rule table for the Ruby tree-sitter grammar.
// rescue and ensure clauses anchor through the grandparent: their parent is
// the body_statement, which starts at the body's first statement rather than
// at the def/begin line they should align with. The type-parameter flag has
// no construct in this grammar and is a no-op.
func RubyRules(cfg Config) Table {
	off := cfg.offset()

	table := Table{
		{When: KindIn(")", "]", "}"), Anchor: ParentBOL(), Offset: 0},
		{When: KindIs("end"), Anchor: ParentBOL(), Offset: 0},
		{When: KindIn("rescue", "ensure"), Anchor: GrandparentBOL(), Offset: 0},
		{When: KindIn("elsif", "else", "when", "in_clause"), Anchor: ParentBOL(), Offset: 0},
	}

	table = append(table, alignSlot("hash", cfg.AlignCurly, off)...)
	table = append(table, alignSlot("method_parameters", cfg.AlignParameters, off)...)
	table = append(table, alignSlot("argument_list", cfg.AlignArguments, off)...)

	if cfg.AlignAssignments {
		table = append(table,
			Rule{When: SiblingOnLine("assignment", 2), Anchor: FirstSibling(), Offset: 0})
	}
	table = append(table,
		Rule{When: ParentIs("assignment"), Anchor: ParentBOL(), Offset: off},

		Rule{When: ParentIn("array", "parenthesized_statements"), Anchor: ParentBOL(), Offset: off},
		Rule{When: ParentIs("program"), Anchor: ColumnZero(), Offset: 0},
		Rule{When: ParentIn(rubyBlocks...), Anchor: ParentBOL(), Offset: off},
		Rule{When: ParentIn(rubyBodies...), Anchor: ParentBOL(), Offset: 0},
		Rule{When: OnBlankLine(), Anchor: ParentBOL(), Offset: 0},
	)

	return table
}
