package bytecode

import (
	"bytes"
	"math"
	"testing"

	"github.com/sonicyouth98/poczfx/internal/ir"
	"github.com/sonicyouth98/poczfx/internal/scanner"
	"github.com/sonicyouth98/poczfx/pkg/token"
)

func TestEmitSingleIntLiteral(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindConstInt, IntVal: 42},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{0}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	want := []uint32{uint32(LoadConstInt), 0, 42}
	if !equalUint32(prog.Codes, want) {
		t.Fatalf("codes = %v, want %v", prog.Codes, want)
	}
	if len(prog.Syms) != 0 {
		t.Fatalf("syms = %v, want empty", prog.Syms)
	}
}

func TestEmitSymbolReference(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindSym, Sym: "@clr"},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{0}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	want := []uint32{uint32(AddrSymbol), 0}
	if !equalUint32(prog.Codes, want) {
		t.Fatalf("codes = %v, want %v (AddrSymbol has no dest register)", prog.Codes, want)
	}
	if len(prog.Syms) != 1 || prog.Syms[0] != "@clr" {
		t.Fatalf("syms = %v, want [@clr]", prog.Syms)
	}
}

func TestEmitBinaryArithmetic(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindConstInt, IntVal: 1},
		{Kind: ir.KindConstInt, IntVal: 2},
		{Kind: ir.KindOp, Op: token.OpAdd, Args: []ir.Id{0, 1}},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{2}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	want := []uint32{
		uint32(LoadConstInt), 0, 1,
		uint32(LoadConstInt), 1, 2,
		uint32(Plus), 2, 0, 1,
	}
	if !equalUint32(prog.Codes, want) {
		t.Fatalf("codes = %v, want %v", prog.Codes, want)
	}
}

func TestEmitSymbolReuseSameId(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindSym, Sym: "@a"},
		{Kind: ir.KindSym, Sym: "@a"},
		{Kind: ir.KindOp, Op: token.OpAdd, Args: []ir.Id{0, 1}},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{2}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	if len(prog.Syms) != 1 || prog.Syms[0] != "@a" {
		t.Fatalf("syms = %v, want [@a]", prog.Syms)
	}
	// Both AddrSymbol instructions must reference SymId 0.
	if prog.Codes[1] != 0 || prog.Codes[3] != 0 {
		t.Fatalf("codes = %v, want both AddrSymbol instructions to reference sym 0", prog.Codes)
	}
}

func TestEmitAssignmentSkipped(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindSym, Sym: "$x"},
		{Kind: ir.KindConstInt, IntVal: 1},
		{Kind: ir.KindOp, Op: token.OpAssign, Args: []ir.Id{0, 1}},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{2}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	want := []uint32{uint32(AddrSymbol), 0, uint32(LoadConstInt), 1, 1}
	if !equalUint32(prog.Codes, want) {
		t.Fatalf("codes = %v, want %v (assignment op emits nothing)", prog.Codes, want)
	}
}

func TestEmitEmptyProgram(t *testing.T) {
	nodes := []ir.Node{{Kind: ir.KindEmpty}}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	if len(prog.Codes) != 0 || len(prog.Syms) != 0 {
		t.Fatalf("prog = %+v, want empty", prog)
	}
}

func TestEmitFloatBitcast(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindConstFloat, FloatVal: 3.5},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{0}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	want := []uint32{uint32(LoadConstFloat), 0, math.Float32bits(3.5)}
	if !equalUint32(prog.Codes, want) {
		t.Fatalf("codes = %v, want %v", prog.Codes, want)
	}
}

func TestDisassembleDoesNotPanic(t *testing.T) {
	nodes := []ir.Node{
		{Kind: ir.KindSym, Sym: "@a"},
		{Kind: ir.KindConstInt, IntVal: 1},
		{Kind: ir.KindOp, Op: token.OpAdd, Args: []ir.Id{0, 1}},
		{Kind: ir.KindOp, Op: token.OpSemi, Args: []ir.Id{2}},
	}
	regs, _ := scanner.Scan(nodes)
	prog := Emit(nodes, regs)

	var buf bytes.Buffer
	NewDisassembler(prog, &buf).Disassemble()
	if buf.Len() == 0 {
		t.Fatalf("disassembler produced no output")
	}
}

func equalUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
