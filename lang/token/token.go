package token

// Token is one lexical unit of a generator expression source string.
type Token struct {
	Kind Kind
	Span Span
}

// Make returns a token of kind k covering [start, end).
func Make(k Kind, start, end uint32) Token {
	return Token{Kind: k, Span: MakeSpan(start, end)}
}

// Text returns the source text of the token.
func (t Token) Text(src string) string { return t.Span.Text(src) }

func (t Token) String() string {
	return t.Kind.String() + "@" + t.Span.String()
}
