package lang

import (
	"github.com/ardnew/genex/lang/token"
)

// Type indicates the variant of a [Node].
type Type int

const (
	// TypeText is a run of literal source text.
	TypeText Type = iota

	// TypeExpression is one matched $<...> construct.
	TypeExpression
)

// String returns a string representation of the node type.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "Text"

	case TypeExpression:
		return "Expression"

	default:
		return "Unknown"
	}
}

// Node is an element of a parsed generator expression tree.
type Node interface {
	// Type returns the node variant.
	Type() Type
	// Span returns the source range covered by the node.
	Span() token.Span

	clone() Node
}

// Text is literal source text.
type Text struct {
	span     token.Span
	absorbed bool
}

// NewText returns a text node covering span.
func NewText(span token.Span) *Text { return &Text{span: span} }

// Type implements [Node].
func (*Text) Type() Type { return TypeText }

// Span implements [Node].
func (t *Text) Span() token.Span { return t.span }

// Absorbed reports whether t was merged into a preceding text node.
// An absorbed node covers nothing and is not reachable from any tree.
func (t *Text) Absorbed() bool { return t.absorbed }

// extend grows t to cover span, which must begin where t ends.
func (t *Text) extend(span token.Span) {
	t.span = t.span.Extend(span.Len)
}

// absorb extends t over other and marks other consumed.
func (t *Text) absorb(other *Text) {
	t.extend(other.span)

	other.span = token.Span{Start: other.span.Start}
	other.absorbed = true
}

func (t *Text) clone() Node {
	c := *t

	return &c
}

// Expression is a matched $<identifier[:param[,param...]]> construct.
type Expression struct {
	// Identifier is the content between "$<" and the first ':' or closing '>'.
	// It may be empty.
	Identifier []Node
	// Parameters holds one node list per comma-separated parameter slot.
	// It is nil when the expression has no ':'.
	Parameters [][]Node

	span token.Span
}

// Type implements [Node].
func (*Expression) Type() Type { return TypeExpression }

// Span implements [Node]. It covers the construct from "$<" through '>'.
func (e *Expression) Span() token.Span { return e.span }

// Arity returns the number of parameter slots.
func (e *Expression) Arity() int { return len(e.Parameters) }

func (e *Expression) clone() Node {
	c := &Expression{
		Identifier: cloneList(e.Identifier),
		span:       e.span,
	}

	if e.Parameters != nil {
		c.Parameters = make([][]Node, len(e.Parameters))
		for i, slot := range e.Parameters {
			c.Parameters[i] = cloneList(slot)
		}
	}

	return c
}

func cloneList(list []Node) []Node {
	if list == nil {
		return nil
	}

	out := make([]Node, len(list))
	for i, n := range list {
		out[i] = n.clone()
	}

	return out
}
