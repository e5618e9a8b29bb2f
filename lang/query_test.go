package lang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const querySource = "$<IF:$<CONFIG:Debug>,1,0> $<CONFIG:Release> $<UNCLOSED:x"

func TestTree_Query(t *testing.T) {
	tr := mustParse(t, querySource)

	tests := []struct {
		name      string
		predicate string
		want      []string
	}{
		{"by identifier", `identifier == "CONFIG"`, []string{"$<CONFIG:Debug>", "$<CONFIG:Release>"}},
		{"by arity", `arity > 2`, []string{"$<IF:$<CONFIG:Debug>,1,0>"}},
		{"by depth", `depth > 0`, []string{"$<CONFIG:Debug>"}},
		{"by parameter", `"Release" in parameters`, []string{"$<CONFIG:Release>"}},
		{"by offset", `offset == 0`, []string{"$<IF:$<CONFIG:Debug>,1,0>"}},
		{"by source", `source startsWith "$<CONFIG"`, []string{"$<CONFIG:Debug>", "$<CONFIG:Release>"}},
		{"unclosed never matches", `identifier == "UNCLOSED"`, nil},
		{"all", `true`, []string{"$<IF:$<CONFIG:Debug>,1,0>", "$<CONFIG:Debug>", "$<CONFIG:Release>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := tr.Query(context.Background(), tt.predicate)
			require.NoError(t, err)

			var got []string
			for _, m := range matches {
				got = append(got, m.Env.Source)
				assert.Equal(t, tr.Text(m.Expr), m.Env.Source)
				assert.Equal(t, m.Depth, m.Env.Depth)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileQuery_Errors(t *testing.T) {
	for _, pred := range []string{
		`identifier ==`,
		`arity`,
		`unknown_field == 1`,
	} {
		t.Run(pred, func(t *testing.T) {
			_, err := CompileQuery(pred)
			assert.ErrorIs(t, err, ErrQueryCompile)
		})
	}
}

func TestQuery_EvaluateError(t *testing.T) {
	tr := mustParse(t, "$<X:a>")

	_, err := tr.Query(context.Background(), `parameters[5] == "x"`)
	assert.ErrorIs(t, err, ErrQueryEvaluate)
}

func TestQuery_Canceled(t *testing.T) {
	tr := mustParse(t, querySource)

	q, err := CompileQuery(`true`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = q.Run(ctx, tr)
	assert.ErrorIs(t, err, context.Canceled)
}
