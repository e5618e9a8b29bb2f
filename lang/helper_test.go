package lang

import (
	"context"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

// ex is the comparable shape of an *Expression in tests.
type ex struct {
	ID     []any
	Params [][]any
}

// sketch converts list to comparable values: text nodes become their source
// text and expressions become ex.
func sketch(tr *Tree, list []Node) []any {
	out := []any{}

	for _, n := range list {
		switch n := n.(type) {
		case *Text:
			out = append(out, tr.Text(n))

		case *Expression:
			e := ex{ID: sketch(tr, n.Identifier)}
			if n.Parameters != nil {
				e.Params = make([][]any, len(n.Parameters))
				for i, slot := range n.Parameters {
					e.Params[i] = sketch(tr, slot)
				}
			}

			out = append(out, e)
		}
	}

	return out
}

func mustParse(t testing.TB, src string) *Tree {
	t.Helper()

	tr, err := ParseString(context.Background(), src)
	require.NoError(t, err)

	return tr
}

// requireNoAdjacentText fails if any node list reachable from list has two
// consecutive text nodes.
func requireNoAdjacentText(t testing.TB, tr *Tree, list []Node) {
	t.Helper()

	for i, n := range list {
		if i > 0 {
			_, prev := list[i-1].(*Text)
			_, cur := n.(*Text)
			require.False(t, prev && cur,
				"adjacent text nodes at %d in %q:\n%s",
				i, tr.Source, repr.String(sketch(tr, list), repr.Indent("  ")))
		}

		if e, ok := n.(*Expression); ok {
			requireNoAdjacentText(t, tr, e.Identifier)

			for _, slot := range e.Parameters {
				requireNoAdjacentText(t, tr, slot)
			}
		}
	}
}

// requireCoverage fails unless the top-level spans tile the source exactly.
func requireCoverage(t testing.TB, tr *Tree) {
	t.Helper()

	var next uint32

	for _, n := range tr.Nodes {
		span := n.Span()
		require.Equal(t, next, span.Start, "gap or overlap before %s in %q", span, tr.Source)
		require.False(t, span.Empty(), "empty node in %q", tr.Source)

		next = span.End()
	}

	require.Equal(t, len(tr.Source), int(next), "source %q not fully covered", tr.Source)
	require.Equal(t, tr.Source, tr.String(), "structural rendering differs")
}
