// Package parser implements the ZFX expression grammar:
//
//	program   := statement*
//	statement := expr ';'
//	expr      := binary
//	binary    := precedence-climbing combination of atoms and binary operators
//	atom      := identifier | int_literal | float_literal
//
// The parser is a single recursive family indexed by precedence level,
// dispatching from the loosest-binding level (comma) down to atoms. Every
// production that may fail captures the cursor position on entry and
// restores it on failure, so a failed speculative parse never loses tokens —
// this is what lets the level loop peek at an operator without consuming it
// when the operator doesn't belong to the current level.
package parser

import (
	"errors"

	"github.com/sonicyouth98/poczfx/internal/ast"
	"github.com/sonicyouth98/poczfx/pkg/token"
)

// ErrParseFailure is returned whenever the parser cannot produce a full
// program-level AST: either a binary operator was consumed with no
// right-hand operand after it, or an expression parsed but no terminating
// ';' followed. There is no partial output and no error recovery — a single
// failure is all the driver gets.
var ErrParseFailure = errors.New("parser: parse failure")

// levels lists the binary-operator precedence levels from loosest-binding
// (parsed first, outermost in the resulting tree) to tightest-binding
// (parsed last, innermost/closest to the leaves), every level left-
// associative. Assignment and its compound forms share one level, placed
// directly inside the comma level, exactly as ordinary low-precedence
// assignment operators behave in C-like languages — this also satisfies the
// documented worked example that multiplication binds tighter than
// addition (see DESIGN.md for why the raw level numbering in the original
// design notes could not be taken literally).
var levels = [][]token.Op{
	{token.OpComma},
	{token.OpAssign, token.OpAddAssign, token.OpSubAssign, token.OpMulAssign, token.OpDivAssign,
		token.OpModAssign, token.OpAndAssign, token.OpOrAssign, token.OpXorAssign},
	{token.OpLogicOr},
	{token.OpLogicAnd},
	{token.OpBitOr},
	{token.OpBitXor},
	{token.OpBitAnd},
	{token.OpEq, token.OpNe},
	{token.OpLt, token.OpLe, token.OpGt, token.OpGe},
	{token.OpShl, token.OpShr},
	{token.OpAdd, token.OpSub},
	{token.OpMul, token.OpDiv, token.OpMod},
}

// cursor is a savepoint/rollback token stream view. Mark/Reset is the
// transactional mechanism every speculative production relies on.
type cursor struct {
	toks []token.Token
	pos  int
}

func (c *cursor) mark() int { return c.pos }

func (c *cursor) reset(m int) { c.pos = m }

// peek returns the current token, or the zero Token (Kind: KindOp,
// Op: OpInvalid) once the stream is exhausted — a value that matches no
// operator set and no atom kind, so it behaves like end-of-input everywhere
// it's inspected.
func (c *cursor) peek() token.Token {
	if c.pos >= len(c.toks) {
		return token.Token{Kind: token.KindOp, Op: token.OpInvalid}
	}
	return c.toks[c.pos]
}

func (c *cursor) advance() token.Token {
	t := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

// ParseProgram parses a full token sequence into the root of the AST: a
// ';'-labelled statement-sequence node with one child per parsed statement.
// It repeats statement parsing until either no expression can be parsed at
// all (success) or an expression begins to parse but cannot complete —
// either a dangling binary operator with no right-hand operand, or a
// complete expression with no trailing ';' (both failures). Parsing stops at
// the first token that cannot begin an expression (a keyword, '(' and the
// like); that token and any after it are not consumed and are not reported.
func ParseProgram(toks []token.Token) (*ast.Node, error) {
	c := &cursor{toks: toks}

	var stmts []*ast.Node
	for {
		m := c.mark()
		expr, hardFail := parseExpr(c)
		if hardFail {
			return nil, ErrParseFailure
		}
		if expr == nil {
			c.reset(m)
			break
		}
		if !c.peek().IsOp(token.OpSemi) {
			return nil, ErrParseFailure
		}
		c.advance()
		stmts = append(stmts, expr)
	}

	return ast.NewOp(token.OpSemi, stmts...), nil
}

// parseExpr parses one expression at the loosest precedence level. It
// returns (nil, false) when nothing parseable starts at the cursor (the
// cursor is left untouched), or (nil, true) when an operator was consumed
// but its required right-hand operand could not be parsed — a dangling
// operator is unrecoverable, not merely "no expression here".
func parseExpr(c *cursor) (*ast.Node, bool) {
	return parseLevel(c, 0)
}

// parseLevel parses the precedence-climbing production for levels[level],
// falling through to atom() once level reaches len(levels). See parseExpr
// for the (node, hardFail) return convention.
func parseLevel(c *cursor, level int) (*ast.Node, bool) {
	if level >= len(levels) {
		return atom(c), false
	}

	left, hardFail := parseLevel(c, level+1)
	if hardFail {
		return nil, true
	}
	if left == nil {
		return nil, false
	}

	for {
		op, matched := matchLevel(c.peek(), levels[level])
		if !matched {
			return left, false
		}
		c.advance()

		right, hardFail := parseLevel(c, level+1)
		if hardFail || right == nil {
			// The operator was consumed but no right-hand operand
			// followed. There is no valid lower-precedence fallback
			// for a dangling operator, so the whole expression
			// attempt fails rather than returning just the left
			// operand.
			return nil, true
		}
		left = ast.NewOp(op, left, right)
	}
}

// matchLevel reports whether tok is one of set's operators, returning the
// matched Op.
func matchLevel(tok token.Token, set []token.Op) (token.Op, bool) {
	if tok.Kind != token.KindOp {
		return token.OpInvalid, false
	}
	for _, op := range set {
		if tok.Op == op {
			return op, true
		}
	}
	return token.OpInvalid, false
}

// atom parses a single identifier or numeric literal token. Any other
// token — including a keyword or structural punctuation — fails this
// production without consuming anything, returning nil.
func atom(c *cursor) *ast.Node {
	m := c.mark()
	t := c.peek()
	switch t.Kind {
	case token.KindIdent, token.KindInt, token.KindFloat:
		c.advance()
		return ast.NewLeaf(t)
	default:
		c.reset(m)
		return nil
	}
}
