package compiler

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/sonicyouth98/poczfx/internal/bytecode"
)

// TestMain lets go-snaps detect obsolete snapshots across this package's
// test run, the same teardown hook the upstream fixture harness uses.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

// programs exercises one source string per end-to-end scenario named in the
// driver's testable-properties section: empty program, literals, a symbol
// reference, arithmetic with precedence, symbol reuse, and multiple
// statements. Each disassembly is snapshotted so a change in emission shape
// shows up as a diff instead of a silent behavior change.
var programs = []struct {
	name string
	src  string
}{
	{"empty", ""},
	{"int_literal", "42;"},
	{"float_literal", "3.5;"},
	{"symbol_reference", "@clr;"},
	{"binary_arithmetic", "1 + 2;"},
	{"precedence", "1 + 2 * 3;"},
	{"symbol_reuse", "@a + @a;"},
	{"two_statements", "1; 2;"},
	{"mixed_attribute_and_parameter", "@clr * $scale + 1;"},
}

func TestCompileSnapshots(t *testing.T) {
	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			res, err := Compile(p.src)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", p.src, err)
			}

			var buf bytes.Buffer
			bytecode.NewDisassembler(bytecode.Program{Codes: res.Codes, Syms: res.Syms}, &buf).Disassemble()

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_nregs", p.name), res.NRegs)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_disasm", p.name), buf.String())
		})
	}
}
