package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/genex/lang/token"
)

func TestMergeText(t *testing.T) {
	list := mergeText(nil, token.Make(token.Text, 0, 3))
	list = mergeText(list, token.Make(token.Comma, 3, 4))

	require.Len(t, list, 1)
	assert.Equal(t, token.MakeSpan(0, 4), list[0].Span())

	// Not contiguous: a new node.
	list = mergeText(list, token.Make(token.Text, 6, 8))

	require.Len(t, list, 2)
	assert.Equal(t, token.MakeSpan(6, 8), list[1].Span())
}

func TestMergeText_AfterExpression(t *testing.T) {
	list := []Node{&Expression{span: token.MakeSpan(0, 4)}}
	list = mergeText(list, token.Make(token.Text, 4, 5))

	require.Len(t, list, 2)
	assert.Equal(t, TypeText, list[1].Type())
}

func TestMergeList_Absorbs(t *testing.T) {
	head := NewText(token.MakeSpan(0, 2))
	tail := NewText(token.MakeSpan(2, 5))
	expr := &Expression{span: token.MakeSpan(5, 9)}

	list := mergeList([]Node{head}, []Node{tail, expr})

	require.Len(t, list, 2)
	assert.Same(t, head, list[0])
	assert.Same(t, expr, list[1])
	assert.Equal(t, token.MakeSpan(0, 5), head.Span())

	assert.True(t, tail.Absorbed())
	assert.True(t, tail.Span().Empty())
	assert.False(t, head.Absorbed())
}

func TestMergeList_NotContiguous(t *testing.T) {
	head := NewText(token.MakeSpan(0, 2))
	tail := NewText(token.MakeSpan(3, 5))

	list := mergeList([]Node{head}, []Node{tail})

	require.Len(t, list, 2)
	assert.False(t, tail.Absorbed())
}

func TestMergeList_EmptySource(t *testing.T) {
	head := NewText(token.MakeSpan(0, 2))
	list := []Node{head}

	assert.Equal(t, list, mergeList(list, nil))
	assert.Nil(t, mergeList(nil, nil))
}

func TestCoalesce(t *testing.T) {
	a := NewText(token.MakeSpan(0, 1))
	b := NewText(token.MakeSpan(1, 2))
	c := NewText(token.MakeSpan(2, 3))
	e := &Expression{span: token.MakeSpan(3, 6)}
	d := NewText(token.MakeSpan(6, 7))
	f := NewText(token.MakeSpan(7, 9))

	out := coalesce([]Node{a, b, c, e, d, f})

	require.Len(t, out, 3)
	assert.Equal(t, token.MakeSpan(0, 3), out[0].Span())
	assert.Same(t, e, out[1])
	assert.Equal(t, token.MakeSpan(6, 9), out[2].Span())

	assert.True(t, b.Absorbed())
	assert.True(t, c.Absorbed())
	assert.True(t, f.Absorbed())
}

func TestCoalesce_Short(t *testing.T) {
	assert.Nil(t, coalesce(nil))

	one := []Node{NewText(token.MakeSpan(0, 1))}
	assert.Equal(t, one, coalesce(one))
}
