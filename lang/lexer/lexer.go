// Package lexer splits generator expression source strings into tokens.
//
// The lexer is context free: every "$<" is a [token.BeginExpr], and every
// '>', ':' and ',' is a delimiter token regardless of nesting. Deciding
// whether a delimiter is structural or literal is left to the parser.
package lexer

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/ardnew/genex/lang/token"
)

// ErrSourceTooLarge is returned for sources whose offsets overflow a span.
var ErrSourceTooLarge = errors.New("source exceeds maximum length")

// Lexer tokenizes generator expression strings.
type Lexer struct {
	sawBegin bool
	sawExpr  bool
}

// Tokenize returns the tokens of src using a fresh [Lexer].
func Tokenize(src string) ([]token.Token, error) {
	var l Lexer

	return l.Tokenize(src)
}

// SawBegin reports whether the last call to Tokenize produced a
// [token.BeginExpr].
func (l *Lexer) SawBegin() bool { return l.sawBegin }

// SawExpression reports whether the last call to Tokenize produced an
// [token.EndExpr] after a [token.BeginExpr]. Sources for which this is false
// cannot contain a matched expression.
func (l *Lexer) SawExpression() bool { return l.sawExpr }

// Tokenize splits src into tokens in source order.
// Adjacent non-delimiter bytes form a single [token.Text] token.
func (l *Lexer) Tokenize(src string) ([]token.Token, error) {
	l.sawBegin, l.sawExpr = false, false

	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrSourceTooLarge, len(src), err)
	}

	var (
		toks []token.Token
		upto int
	)

	text := func(end int) {
		if end > upto {
			toks = append(toks, token.Make(token.Text, uint32(upto), uint32(end)))
		}
	}

	delim := func(k token.Kind, at, width int) {
		text(at)
		toks = append(toks, token.Make(k, uint32(at), uint32(at+width)))
		upto = at + width
	}

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '$':
			if i+1 < len(src) && src[i+1] == '<' {
				delim(token.BeginExpr, i, 2)
				l.sawBegin = true
				i++
			}

		case '>':
			delim(token.EndExpr, i, 1)
			l.sawExpr = l.sawExpr || l.sawBegin

		case ':':
			delim(token.Colon, i, 1)

		case ',':
			delim(token.Comma, i, 1)
		}
	}

	text(len(src))

	return toks, nil
}
