// Package bytecode implements the ZFX emitter: it turns a lowered IR array
// and its register map into a linear stream of 32-bit code words, plus the
// symbol table those words reference.
//
// The opcode enumeration below is the externally-defined contract the
// downstream VM consumes; this package only needs the Op-to-OpCode mapping,
// never an interpreter loop.
package bytecode

// OpCode is one entry in the VM's bytecode enumeration. Numeric values are
// this package's own contiguous assignment; a real VM binding would replace
// them with whatever the VM defines, but the compiler never depends on the
// concrete values, only on the mapping from token.Op to OpCode.
type OpCode uint32

const (
	LoadConstInt OpCode = iota
	LoadConstFloat
	AddrSymbol
	Plus
	Minus
	Multiply
	Divide
	Modulus
	BitInverse
	BitAnd
	BitOr
	BitXor
	BitShl
	BitShr
	LogicNot
	LogicAnd
	LogicOr
	CmpEqual
	CmpNotEqual
	CmpLessThan
	CmpLessEqual
	CmpGreaterThan
	CmpGreaterEqual
)

var opCodeNames = map[OpCode]string{
	LoadConstInt:    "LoadConstInt",
	LoadConstFloat:  "LoadConstFloat",
	AddrSymbol:      "AddrSymbol",
	Plus:            "Plus",
	Minus:           "Minus",
	Multiply:        "Multiply",
	Divide:          "Divide",
	Modulus:         "Modulus",
	BitInverse:      "BitInverse",
	BitAnd:          "BitAnd",
	BitOr:           "BitOr",
	BitXor:          "BitXor",
	BitShl:          "BitShl",
	BitShr:          "BitShr",
	LogicNot:        "LogicNot",
	LogicAnd:        "LogicAnd",
	LogicOr:         "LogicOr",
	CmpEqual:        "CmpEqual",
	CmpNotEqual:     "CmpNotEqual",
	CmpLessThan:     "CmpLessThan",
	CmpLessEqual:    "CmpLessEqual",
	CmpGreaterThan:  "CmpGreaterThan",
	CmpGreaterEqual: "CmpGreaterEqual",
}

func (op OpCode) String() string {
	if name, ok := opCodeNames[op]; ok {
		return name
	}
	return "OpCode(?)"
}

// arity reports how many register-word operands follow an opcode of this
// kind, for opcodes emitted with the uniform [opcode, dest, operands...]
// shape. AddrSymbol is handled separately by the disassembler: it has no
// destination register at all, only a trailing symbol ID.
func (op OpCode) arity() int {
	switch op {
	case LoadConstInt, LoadConstFloat:
		return 1 // one immediate word
	case LogicNot, BitInverse:
		return 1 // one operand register
	case Plus, Minus, Multiply, Divide, Modulus,
		BitAnd, BitOr, BitXor, BitShl, BitShr,
		LogicAnd, LogicOr,
		CmpEqual, CmpNotEqual, CmpLessThan, CmpLessEqual, CmpGreaterThan, CmpGreaterEqual:
		return 2
	default:
		return 0
	}
}
