package bytecode

import "github.com/sonicyouth98/poczfx/pkg/token"

// op2bc is the fixed translation from a binary token.Op to its VM opcode.
// Assignment and compound-assignment operators intentionally have no entry:
// the emitter silently skips them (see Emit).
//
// BitNot and LogicNot are mapped for completeness of the externally-defined
// enumeration even though the implemented grammar has no unary production
// and so never produces an Op node carrying either operator.
var op2bc = map[token.Op]OpCode{
	token.OpAdd:      Plus,
	token.OpSub:      Minus,
	token.OpMul:      Multiply,
	token.OpDiv:      Divide,
	token.OpMod:      Modulus,
	token.OpBitNot:   BitInverse,
	token.OpBitAnd:   BitAnd,
	token.OpBitOr:    BitOr,
	token.OpBitXor:   BitXor,
	token.OpShl:      BitShl,
	token.OpShr:      BitShr,
	token.OpNot:      LogicNot,
	token.OpLogicAnd: LogicAnd,
	token.OpLogicOr:  LogicOr,
	token.OpEq:       CmpEqual,
	token.OpNe:       CmpNotEqual,
	token.OpLt:       CmpLessThan,
	token.OpLe:       CmpLessEqual,
	token.OpGt:       CmpGreaterThan,
	token.OpGe:       CmpGreaterEqual,
}
