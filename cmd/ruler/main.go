package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jward/ruler"
	"github.com/jward/ruler/internal/lang"
)

var (
	flagOffset          int
	flagAlignArgs       bool
	flagAlignParams     bool
	flagAlignTypeParams bool
	flagAlignCurly      bool
	flagAlignAssign     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ruler",
	Short:         "Rule-driven source code reindentation",
	Long:          "Ruler parses source files with tree-sitter and recomputes each line's indentation from an ordered rule table over the syntax tree.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run; prints help by default.
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagOffset, "offset", ruler.DefaultIndentOffset, "indent step in columns")
	pf.BoolVar(&flagAlignArgs, "align-arguments", false, "align argument lists to their first element")
	pf.BoolVar(&flagAlignParams, "align-parameters", false, "align parameter lists to their first element")
	pf.BoolVar(&flagAlignTypeParams, "align-type-parameters", false, "align type parameter lists to their first element")
	pf.BoolVar(&flagAlignCurly, "align-curly", false, "align curly-brace expressions to their first element")
	pf.BoolVar(&flagAlignAssign, "align-assignments", false, "align assignment continuations to the first sibling")

	rootCmd.AddCommand(indentCmd)
	rootCmd.AddCommand(checkCmd)
}

// configFromFlags builds the engine Config from the persistent flags.
func configFromFlags() ruler.Config {
	return ruler.Config{
		IndentOffset:        flagOffset,
		AlignArguments:      flagAlignArgs,
		AlignParameters:     flagAlignParams,
		AlignTypeParameters: flagAlignTypeParams,
		AlignCurly:          flagAlignCurly,
		AlignAssignments:    flagAlignAssign,
	}
}

var flagWrite bool

var indentCmd = &cobra.Command{
	Use:   "indent <file>...",
	Short: "Recompute indentation for source files",
	Long:  "Reindents each file top to bottom using the rule table for its language. Prints the result to stdout, or rewrites the file in place with --write.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndent,
}

func init() {
	indentCmd.Flags().BoolVar(&flagWrite, "write", false, "rewrite files in place instead of printing to stdout")
}

func runIndent(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := configFromFlags()

	for _, path := range args {
		language, ok := lang.LanguageForFile(path)
		if !ok {
			return fmt.Errorf("unsupported file type: %s", path)
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		out, err := lang.Reindent(ctx, src, language, cfg)
		if err != nil {
			return fmt.Errorf("reindenting %s: %w", path, err)
		}

		if flagWrite {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			continue
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report lines whose indentation differs from the computed column",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := configFromFlags()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLINE\tHAVE\tWANT")

	total := 0
	for _, path := range args {
		language, ok := lang.LanguageForFile(path)
		if !ok {
			return fmt.Errorf("unsupported file type: %s", path)
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		mismatches, err := lang.Check(ctx, src, language, cfg)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		for _, m := range mismatches {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", path, m.Line, m.Have, m.Want)
		}
		total += len(mismatches)
	}
	tw.Flush()

	if total > 0 {
		return fmt.Errorf("%d misindented line(s)", total)
	}
	return nil
}
