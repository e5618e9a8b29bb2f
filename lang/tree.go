package lang

import (
	"context"
	"iter"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/genex/lang/lexer"
	"github.com/ardnew/genex/lang/token"
	"github.com/ardnew/genex/log"
)

// Tree is the parsed form of one generator expression source string.
//
// The nodes index into Source; a Tree owns its nodes exclusively.
type Tree struct {
	Source string
	Nodes  []Node
	opts   optionsKey
	logger log.Logger // outside optionsKey, doesn't affect cache
}

// optionsKey holds options that affect parse results.
type optionsKey struct {
	noCache bool
}

// Option configures parsing.
type Option func(*Tree)

// WithLogger sets the logger used to trace parsing.
func WithLogger(logger log.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithCache controls whether [ParseReader] may reuse a previous parse of
// identical input. Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(t *Tree) {
		t.opts.noCache = !enable
	}
}

func newTree(src string, opts ...Option) *Tree {
	t := &Tree{Source: src}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ParseString tokenizes and parses src.
//
// Malformed constructs never cause an error; the only failure is a source too
// large to index.
func ParseString(ctx context.Context, src string, opts ...Option) (*Tree, error) {
	t := newTree(src, opts...)

	var lx lexer.Lexer

	toks, err := lx.Tokenize(src)
	if err != nil {
		return nil, ErrSourceTooLarge.Wrap(err).
			With(slog.Int("source_bytes", len(src)))
	}

	var p parser

	switch {
	case !lx.SawBegin():
		// Without "$<" every token is text and coalesces into one node.
		if len(src) > 0 {
			t.Nodes = []Node{NewText(token.MakeSpan(0, uint32(len(src))))}
		}

	default:
		p = parser{tokens: toks}
		t.Nodes = p.parse()
	}

	t.logger.TraceContext(ctx, "parse complete",
		slog.Int("token_count", len(toks)),
		slog.Int("node_count", len(t.Nodes)),
		slog.Int("backtrack_count", p.backtracks),
		slog.Bool("saw_expression", lx.SawExpression()),
	)

	return t, nil
}

// ParseAll parses each source independently and concurrently.
// The returned trees are in the order of sources.
func ParseAll(
	ctx context.Context,
	sources []string,
	opts ...Option,
) ([]*Tree, error) {
	trees := make([]*Tree, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t, err := ParseString(ctx, src, opts...)
			if err != nil {
				return WrapError(err).With(slog.Int("index", i))
			}

			trees[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return trees, nil
}

// Text returns the source text covered by n.
func (t *Tree) Text(n Node) string {
	return n.Span().Text(t.Source)
}

// ListText returns the concatenated source text of list.
func (t *Tree) ListText(list []Node) string {
	var sb strings.Builder

	for _, n := range list {
		sb.WriteString(t.Text(n))
	}

	return sb.String()
}

// Identifier returns the raw source text of e's identifier.
func (t *Tree) Identifier(e *Expression) string {
	return t.ListText(e.Identifier)
}

// Parameters returns the raw source text of each of e's parameter slots.
func (t *Tree) Parameters(e *Expression) []string {
	params := make([]string, len(e.Parameters))
	for i, slot := range e.Parameters {
		params[i] = t.ListText(slot)
	}

	return params
}

// Walk calls fn for each node in pre-order: an expression is visited before
// its identifier nodes, which are visited before its parameter nodes.
// depth is the number of enclosing expressions. Walk stops when fn returns
// false.
func (t *Tree) Walk(fn func(n Node, depth int) bool) {
	walkList(t.Nodes, 0, fn)
}

func walkList(list []Node, depth int, fn func(Node, int) bool) bool {
	for _, n := range list {
		if !fn(n, depth) {
			return false
		}

		e, ok := n.(*Expression)
		if !ok {
			continue
		}

		if !walkList(e.Identifier, depth+1, fn) {
			return false
		}

		for _, slot := range e.Parameters {
			if !walkList(slot, depth+1, fn) {
				return false
			}
		}
	}

	return true
}

// Expressions returns an iterator over every expression in the tree,
// including nested ones, in pre-order.
func (t *Tree) Expressions() iter.Seq[*Expression] {
	return func(yield func(*Expression) bool) {
		t.Walk(func(n Node, _ int) bool {
			if e, ok := n.(*Expression); ok {
				return yield(e)
			}

			return true
		})
	}
}

// Clone returns a deep copy of t that shares no nodes with it.
func (t *Tree) Clone() *Tree {
	c := *t
	c.Nodes = cloneList(t.Nodes)

	return &c
}
