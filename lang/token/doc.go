// Package token defines the lexical tokens of generator expressions and the
// byte spans that locate them in their source string.
//
// A [Span] is a (start, length) view into one immutable source string shared
// by every token of a single input. Spans never own text; callers recover the
// text with [Span.Text].
package token
