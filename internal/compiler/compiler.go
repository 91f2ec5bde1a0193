// Package compiler implements the ZFX driver: the single entry point that
// runs source text through the five-pass pipeline (tokenizer, parser,
// lowerer, scanner, emitter) and returns either a finished Result or a
// parse-failure error.
//
// The driver holds no state across calls and no component reads or writes
// process-global state, so independent Compile calls may run concurrently
// in separate goroutines without synchronization.
package compiler

import (
	"errors"

	"github.com/sonicyouth98/poczfx/internal/bytecode"
	"github.com/sonicyouth98/poczfx/internal/ir"
	"github.com/sonicyouth98/poczfx/internal/lexer"
	"github.com/sonicyouth98/poczfx/internal/parser"
	"github.com/sonicyouth98/poczfx/internal/scanner"
)

// ErrTrailingGarbage is returned when the tokenizer stops before consuming
// all of the source: whatever remains could not be tokenized.
var ErrTrailingGarbage = errors.New("compiler: trailing unrecognized input")

// Result is the complete output of a successful compile.
type Result struct {
	Codes []uint32
	Syms  []string
	NRegs uint32
}

// Compile runs src through the full pipeline. On any parse failure —
// malformed numeric literal, trailing garbage, or a grammar-level parse
// failure — it returns a nil Result and a non-nil error; there is no
// partial output.
func Compile(src string) (*Result, error) {
	toks, rest, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, ErrTrailingGarbage
	}

	root, err := parser.ParseProgram(toks)
	if err != nil {
		return nil, err
	}

	nodes, _ := ir.Lower(root)
	regs, _ := scanner.Scan(nodes)
	prog := bytecode.Emit(nodes, regs)

	return &Result{
		Codes: prog.Codes,
		Syms:  prog.Syms,
		NRegs: uint32(len(nodes)),
	}, nil
}
