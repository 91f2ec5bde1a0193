// Package ir implements the ZFX lowerer: it turns an AST into a flat,
// append-only intermediate representation where every node's index is its
// permanent identity.
//
// Lowering is a single post-order traversal. A child is always lowered (and
// therefore appended) before its parent, so Id order is a topological order:
// no node's Id is ever less than any of its operands' Ids. The register
// allocator and emitter both depend on this property and do not re-derive
// it.
package ir

import (
	"github.com/sonicyouth98/poczfx/internal/ast"
	"github.com/sonicyouth98/poczfx/pkg/token"
)

// Id identifies a node by its position in the flat node array.
type Id int

// Kind discriminates the tagged-union payload a Node carries.
type Kind int

const (
	KindEmpty Kind = iota
	KindConstInt
	KindConstFloat
	KindOp
	KindSym
)

// Node is one entry in the flat IR array. Only the fields matching Kind are
// meaningful; the rest are zero.
type Node struct {
	Kind     Kind
	Op       token.Op
	Args     []Id
	IntVal   int32
	FloatVal float32
	Sym      string
}

// Lower walks root in post-order and returns the flat node array together
// with the Id of the node corresponding to root.
func Lower(root *ast.Node) (nodes []Node, rootId Id) {
	l := &lowerer{}
	id := l.lower(root)
	return l.nodes, id
}

type lowerer struct {
	nodes []Node
}

func (l *lowerer) push(n Node) Id {
	id := Id(len(l.nodes))
	l.nodes = append(l.nodes, n)
	return id
}

func (l *lowerer) lower(n *ast.Node) Id {
	switch n.Tok.Kind {
	case token.KindInt:
		return l.push(Node{Kind: KindConstInt, IntVal: n.Tok.IntVal})
	case token.KindFloat:
		return l.push(Node{Kind: KindConstFloat, FloatVal: n.Tok.FloatVal})
	case token.KindIdent:
		return l.push(Node{Kind: KindSym, Sym: n.Tok.Ident})
	default:
		return l.lowerOp(n)
	}
}

func (l *lowerer) lowerOp(n *ast.Node) Id {
	args := make([]Id, len(n.Children))
	for i, child := range n.Children {
		args[i] = l.lower(child)
	}
	return l.push(Node{Kind: KindOp, Op: n.Tok.Op, Args: args})
}
