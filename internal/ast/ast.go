// Package ast defines the ZFX Abstract Syntax Tree: a tree node carrying one
// Token as its label and an ordered sequence of child nodes.
//
// Leaf nodes (identifier, int literal, float literal) have no children.
// Internal nodes carry an operator token and have exactly as many children
// as the operator's arity; the top-level statement-sequence node carries
// the ';' op and has one child per parsed statement. Each parent exclusively
// owns its children — there are no back-pointers and no shared subtrees —
// so the lowerer can consume the tree in a single recursive traversal.
package ast

import "github.com/sonicyouth98/poczfx/pkg/token"

// Node is the single AST node type. Every node in the tree, leaf or
// internal, is a Node; its shape is determined entirely by Tok.Kind and the
// length of Children.
type Node struct {
	Tok      token.Token
	Children []*Node
}

// NewLeaf builds a leaf node (identifier or literal) from a single token.
func NewLeaf(tok token.Token) *Node {
	return &Node{Tok: tok}
}

// NewOp builds an internal node labelled with an operator token, owning the
// given children in order.
func NewOp(op token.Op, children ...*Node) *Node {
	return &Node{Tok: token.NewOp(op), Children: children}
}
