package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// QueryEnv is the environment a query predicate is evaluated against, once
// per expression in the tree.
type QueryEnv struct {
	Identifier string   `expr:"identifier" json:"identifier"`
	Parameters []string `expr:"parameters" json:"parameters"`
	Source     string   `expr:"source"     json:"source"`
	Arity      int      `expr:"arity"      json:"arity"`
	Depth      int      `expr:"depth"      json:"depth"`
	Offset     int      `expr:"offset"     json:"offset"`
}

// Match is an expression selected by [Tree.Query].
type Match struct {
	Expr  *Expression
	Env   QueryEnv
	Depth int
}

// Query is a compiled predicate over [QueryEnv].
type Query struct {
	source  string
	program *vm.Program
}

// CompileQuery compiles an expr-lang predicate such as
//
//	identifier == "CONFIG" && arity > 0
//
// The predicate must evaluate to a boolean.
func CompileQuery(predicate string) (*Query, error) {
	program, err := expr.Compile(predicate, expr.Env(QueryEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).
			With(slog.String("predicate", predicate))
	}

	return &Query{source: predicate, program: program}, nil
}

// Query compiles predicate and returns the matching expressions of t in
// pre-order.
func (t *Tree) Query(ctx context.Context, predicate string) ([]Match, error) {
	q, err := CompileQuery(predicate)
	if err != nil {
		return nil, err
	}

	return q.Run(ctx, t)
}

// Run evaluates q against every expression of t.
func (q *Query) Run(ctx context.Context, t *Tree) ([]Match, error) {
	var (
		matches []Match
		runErr  error
	)

	t.Walk(func(n Node, depth int) bool {
		if err := ctx.Err(); err != nil {
			runErr = err

			return false
		}

		e, ok := n.(*Expression)
		if !ok {
			return true
		}

		env := t.queryEnv(e, depth)

		out, err := expr.Run(q.program, env)
		if err != nil {
			runErr = ErrQueryEvaluate.Wrap(err).
				With(slog.String("predicate", q.source), slog.Int("offset", env.Offset))

			return false
		}

		// CompileQuery requires a boolean result.
		if out.(bool) {
			matches = append(matches, Match{Expr: e, Env: env, Depth: depth})
		}

		return true
	})

	if runErr != nil {
		return nil, runErr
	}

	t.logger.TraceContext(ctx, "query complete",
		slog.String("predicate", q.source),
		slog.Int("match_count", len(matches)),
	)

	return matches, nil
}

func (t *Tree) queryEnv(e *Expression, depth int) QueryEnv {
	return QueryEnv{
		Identifier: t.Identifier(e),
		Parameters: t.Parameters(e),
		Source:     t.Text(e),
		Arity:      e.Arity(),
		Depth:      depth,
		Offset:     int(e.span.Start),
	}
}
