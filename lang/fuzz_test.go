package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/genex/lang/lexer"
)

func FuzzParse(f *testing.F) {
	for _, seed := range roundTripSources {
		f.Add(seed)
	}

	f.Add("$<$<$<")
	f.Add(">>>:::,,,")
	f.Add("$<A:$<B:$<C,d>,e")
	f.Add("x$<:>y$<,>z")

	f.Fuzz(func(t *testing.T, src string) {
		tr := mustParse(t, src)

		requireCoverage(t, tr)
		requireNoAdjacentText(t, tr, tr.Nodes)

		toks, err := lexer.Tokenize(src)
		require.NoError(t, err)

		assert.Equal(t, sketch(tr, tr.Nodes), sketch(tr, Parse(toks)))
	})
}
