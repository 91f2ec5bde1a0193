package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sonicyouth98/poczfx/internal/lexer"
	"github.com/sonicyouth98/poczfx/pkg/token"
	"github.com/spf13/cobra"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a ZFX source file or expression",
	Long: `Tokenize (lex) a ZFX program and print the resulting tokens.

If no file is given, reads from stdin. Tokenization never fails on an
unrecognized character — it stops there and the remainder, if any, is
printed as trailing garbage.

Examples:
  zfxc lex script.zfx
  zfxc lex -e "@clr + 1;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	toks, rest, err := lexer.Tokenize(input)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	for i, tok := range toks {
		fmt.Printf("%4d  %-10s %s\n", i, kindName(tok.Kind), tok.String())
	}

	if rest != "" {
		fmt.Printf("<trailing garbage: %q>\n", rest)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "---\ntotal tokens: %d\n", len(toks))
	}

	return nil
}

func kindName(k token.Kind) string {
	switch k {
	case token.KindOp:
		return "OP"
	case token.KindIdent:
		return "IDENT"
	case token.KindInt:
		return "INT"
	case token.KindFloat:
		return "FLOAT"
	default:
		return "?"
	}
}

// readSource resolves the "inline expression vs. file vs. stdin" input
// convention shared by lex, parse, and compile.
func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
