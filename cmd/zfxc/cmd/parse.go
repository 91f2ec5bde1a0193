package cmd

import (
	"fmt"
	"os"

	"github.com/sonicyouth98/poczfx/internal/ast"
	"github.com/sonicyouth98/poczfx/internal/lexer"
	"github.com/sonicyouth98/poczfx/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ZFX source and print its AST",
	Long: `Parse ZFX source code and display the Abstract Syntax Tree.

If no file is given, reads from stdin. A single parse failure — a
dangling operator, a missing statement terminator, or trailing garbage
from the tokenizer — aborts with no partial tree printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	toks, rest, err := lexer.Tokenize(input)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	if rest != "" {
		return fmt.Errorf("trailing unrecognized input: %q", rest)
	}

	root, err := parser.ParseProgram(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse failed: no output")
		return err
	}

	dumpNode(root, 0)
	return nil
}

func dumpNode(n *ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	fmt.Printf("%s%s\n", prefix, n.Tok.String())
	for _, child := range n.Children {
		dumpNode(child, indent+1)
	}
}
