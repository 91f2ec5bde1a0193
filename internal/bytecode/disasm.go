package bytecode

import (
	"fmt"
	"io"
	"math"
)

// Disassembler prints a human-readable listing of a Program's code-word
// stream for debugging the compiler's own output.
type Disassembler struct {
	writer io.Writer
	prog   Program
}

// NewDisassembler creates a disassembler for prog, writing to w.
func NewDisassembler(prog Program, w io.Writer) *Disassembler {
	return &Disassembler{writer: w, prog: prog}
}

// Disassemble prints the full symbol table followed by the code stream.
func (d *Disassembler) Disassemble() {
	if len(d.prog.Syms) > 0 {
		fmt.Fprintf(d.writer, "Symbols:\n")
		for i, s := range d.prog.Syms {
			fmt.Fprintf(d.writer, "  [%d] %s\n", i, s)
		}
		fmt.Fprintf(d.writer, "\n")
	}

	fmt.Fprintf(d.writer, "Code:\n")
	offset := 0
	for offset < len(d.prog.Codes) {
		offset = d.instruction(offset)
	}
}

// instruction prints the instruction starting at offset and returns the
// offset of the next instruction.
func (d *Disassembler) instruction(offset int) int {
	op := OpCode(d.prog.Codes[offset])
	fmt.Fprintf(d.writer, "%04d  %-14s", offset, op)

	switch op {
	case AddrSymbol:
		symId := d.prog.Codes[offset+1]
		name := "?"
		if int(symId) < len(d.prog.Syms) {
			name = d.prog.Syms[symId]
		}
		fmt.Fprintf(d.writer, " sym[%d] (%s)\n", symId, name)
		return offset + 2

	case LoadConstInt:
		dest := d.prog.Codes[offset+1]
		v := int32(d.prog.Codes[offset+2])
		fmt.Fprintf(d.writer, " r%d, %d\n", dest, v)
		return offset + 3

	case LoadConstFloat:
		dest := d.prog.Codes[offset+1]
		v := math.Float32frombits(d.prog.Codes[offset+2])
		fmt.Fprintf(d.writer, " r%d, %g\n", dest, v)
		return offset + 3

	default:
		dest := d.prog.Codes[offset+1]
		n := op.arity()
		fmt.Fprintf(d.writer, " r%d", dest)
		for i := 0; i < n; i++ {
			fmt.Fprintf(d.writer, ", r%d", d.prog.Codes[offset+2+i])
		}
		fmt.Fprintln(d.writer)
		return offset + 2 + n
	}
}
