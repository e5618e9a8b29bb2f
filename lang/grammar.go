package lang

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the surface syntax in EBNF (golang.org/x/exp/ebnf notation),
// with Content as the start production.
//
// The grammar describes well-formed input only. Input that does not match
// still parses: stray delimiters and unclosed "$<" are kept as text.
const Grammar = `Content    = { Text | Expression | Delimiter } .
Expression = "$<" Identifier [ ":" Parameters ] ">" .
Identifier = { Text | Expression | "," } .
Parameters = Parameter { "," Parameter } .
Parameter  = { Text | Expression | ":" } .
Delimiter  = ">" | ":" | "," .
Text       = char { char } .
char       = "\x00" … "\x7f" .
`

// GrammarStart is the start production of [Grammar].
const GrammarStart = "Content"

// ParseGrammar parses and verifies [Grammar].
func ParseGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("genex.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}

	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, err
	}

	return g, nil
}
