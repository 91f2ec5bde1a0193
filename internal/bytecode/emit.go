package bytecode

import (
	"math"

	"github.com/sonicyouth98/poczfx/internal/ir"
	"github.com/sonicyouth98/poczfx/internal/scanner"
)

// Program is the emitter's complete output: the linear code-word stream and
// the interned symbol table, in first-occurrence order.
type Program struct {
	Codes []uint32
	Syms  []string
}

// Emit walks nodes in index order and produces the code-word stream and
// symbol table for regs, the register map Scan produced for the same
// nodes. Emit never fails: every IR variant either has a defined emission
// or is silently skipped (assignment operators and the statement-sequence
// node emit nothing).
func Emit(nodes []ir.Node, regs []scanner.RegId) Program {
	e := &emitter{symIndex: make(map[string]uint32)}
	for i, n := range nodes {
		e.emitNode(ir.Id(i), n, regs)
	}
	return Program{Codes: e.codes, Syms: e.syms}
}

type emitter struct {
	codes    []uint32
	syms     []string
	symIndex map[string]uint32
}

func (e *emitter) emitNode(id ir.Id, n ir.Node, regs []scanner.RegId) {
	switch n.Kind {
	case ir.KindConstInt:
		e.codes = append(e.codes, uint32(LoadConstInt), uint32(regs[id]), uint32(n.IntVal))

	case ir.KindConstFloat:
		e.codes = append(e.codes, uint32(LoadConstFloat), uint32(regs[id]), math.Float32bits(n.FloatVal))

	case ir.KindSym:
		e.codes = append(e.codes, uint32(AddrSymbol), e.intern(n.Sym))

	case ir.KindOp:
		if n.Op.IsAssign() {
			return
		}
		op, ok := op2bc[n.Op]
		if !ok {
			// Includes the top-level ';' statement-sequence node.
			return
		}
		e.codes = append(e.codes, uint32(op), uint32(regs[id]))
		for _, arg := range n.Args {
			e.codes = append(e.codes, uint32(regs[arg]))
		}

	case ir.KindEmpty:
		// nothing emitted
	}
}

// intern assigns name the next SymId on first occurrence and reuses it on
// every subsequent reference.
func (e *emitter) intern(name string) uint32 {
	if id, ok := e.symIndex[name]; ok {
		return id
	}
	id := uint32(len(e.syms))
	e.syms = append(e.syms, name)
	e.symIndex[name] = id
	return id
}
