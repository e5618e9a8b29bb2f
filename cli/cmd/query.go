package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ardnew/genex/lang"
	"github.com/ardnew/genex/log"
)

// Query lists the expressions of a source that satisfy a predicate.
type Query struct {
	Predicate string `arg:"" help:"expr-lang predicate over identifier, parameters, arity, depth, offset and source."`
	Source    string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`

	Count  bool   `help:"Print only the number of matches." short:"n"`
	Output string `default:"text" enum:"text,json" help:"Match format (${enum})." short:"o"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) error {
	compiled, err := lang.CompileQuery(q.Predicate)
	if err != nil {
		return err
	}

	tree, err := readTree(ctx, q.Source)
	if err != nil {
		return err
	}

	matches, err := compiled.Run(ctx, tree)
	if err != nil {
		return err
	}

	log.Default().DebugContext(ctx, "query matched",
		slog.String("predicate", q.Predicate),
		slog.Int("match_count", len(matches)),
	)

	w := output(ctx)

	if q.Count {
		_, err := fmt.Fprintln(w, len(matches))

		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, m := range matches {
		if q.Output == "json" {
			if err := enc.Encode(m.Env); err != nil {
				return lang.ErrEncode.Wrap(err).With(slog.String("format", "json"))
			}

			continue
		}

		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n",
			m.Env.Offset, m.Depth, strconv.Quote(m.Env.Source)); err != nil {
			return err
		}
	}

	return nil
}
