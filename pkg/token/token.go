package token

import "strconv"

// Kind identifies which variant of the Token tagged union is populated.
type Kind int

const (
	// KindOp means the token is an operator/punctuation/keyword; Op is set.
	KindOp Kind = iota
	// KindIdent means the token is an identifier; Ident is set, prefix
	// ('$' or '@') included verbatim.
	KindIdent
	// KindInt means the token is an integer literal; IntVal is set.
	KindInt
	// KindFloat means the token is a floating-point literal; FloatVal is set.
	KindFloat
)

// Token is the tagged union produced by the tokenizer: exactly one of Op,
// Ident, IntVal, FloatVal is meaningful, selected by Kind. There is no
// source position field — ZFX does not track source locations (see
// Non-goals).
type Token struct {
	Kind     Kind
	Op       Op
	Ident    string
	IntVal   int32
	FloatVal float32
}

// NewOp builds an operator/punctuation/keyword token.
func NewOp(op Op) Token {
	return Token{Kind: KindOp, Op: op}
}

// NewIdent builds an identifier token, prefix included.
func NewIdent(name string) Token {
	return Token{Kind: KindIdent, Ident: name}
}

// NewInt builds an integer literal token.
func NewInt(v int32) Token {
	return Token{Kind: KindInt, IntVal: v}
}

// NewFloat builds a floating-point literal token.
func NewFloat(v float32) Token {
	return Token{Kind: KindFloat, FloatVal: v}
}

// IsOp reports whether the token is the given operator.
func (t Token) IsOp(op Op) bool {
	return t.Kind == KindOp && t.Op == op
}

// String renders the token for debug tooling and test failure messages.
func (t Token) String() string {
	switch t.Kind {
	case KindOp:
		return t.Op.String()
	case KindIdent:
		return t.Ident
	case KindInt:
		return strconv.FormatInt(int64(t.IntVal), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(t.FloatVal), 'g', -1, 32)
	default:
		return "<invalid token>"
	}
}
