package cmd

import (
	"context"
	"io"

	"github.com/ardnew/genex/lang"
)

// Grammar prints the EBNF grammar of generator expressions.
type Grammar struct{}

// Run executes the grammar command.
func (Grammar) Run(ctx context.Context) error {
	if _, err := lang.ParseGrammar(); err != nil {
		return ErrGrammar.Wrap(err)
	}

	_, err := io.WriteString(output(ctx), lang.Grammar)

	return err
}
