package lang

import (
	"github.com/ardnew/genex/lang/token"
)

// Parse builds the node list for a token stream.
//
// Parse never fails. An unmatched "$<", along with everything consumed while
// looking for its closing '>', is kept as literal text. Every input token is
// represented exactly once in the result, and no two consecutive nodes of the
// result are both [*Text].
//
// The tokens must be in source order and index one shared source string.
func Parse(tokens []token.Token) []Node {
	p := parser{tokens: tokens}

	return p.parse()
}

// parser holds the state of a single parse. It is not safe for concurrent
// use, but distinct parsers share nothing.
type parser struct {
	tokens     []token.Token
	pos        int
	depth      int
	backtracks int
}

// outcome is the result of parsing one "$<" construct: either the matched
// expression or the literal fallback nodes replacing it.
type outcome struct {
	expr     *Expression
	fallback []Node
}

// spliceInto appends the outcome to list.
func (o outcome) spliceInto(list []Node) []Node {
	if o.expr != nil {
		return append(list, o.expr)
	}

	return mergeList(list, o.fallback)
}

func (p *parser) parse() []Node {
	var result []Node

	for !p.eof() {
		result = p.parseContent(result)
	}

	return result
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

// at reports whether the current token has kind k.
func (p *parser) at(k token.Kind) bool {
	return !p.eof() && p.tokens[p.pos].Kind == k
}

// next consumes and returns the current token.
func (p *parser) next() token.Token {
	tok := p.tokens[p.pos]
	p.pos++

	return tok
}

// parseContent consumes at least one token and appends its nodes to list.
func (p *parser) parseContent(list []Node) []Node {
	switch tok := p.next(); tok.Kind {
	case token.Text:
		if p.depth == 0 {
			return mergeText(list, tok)
		}

		return append(list, NewText(tok.Span))

	case token.BeginExpr:
		return p.parseExpression().spliceInto(list)

	default:
		// Stray delimiter outside any expression. Inside an expression the
		// callers consume delimiters themselves, so this also keeps any that
		// slip through as text rather than dropping them.
		return mergeText(list, tok)
	}
}

// parseExpression parses the construct whose "$<" was just consumed.
func (p *parser) parseExpression() outcome {
	entry := p.depth
	p.depth++

	begin := p.tokens[p.pos-1]

	var identifier []Node

	for !p.eof() && !p.at(token.EndExpr) && !p.at(token.Colon) {
		if p.at(token.Comma) {
			identifier = mergeText(identifier, p.next())

			continue
		}

		identifier = p.parseContent(identifier)
	}

	identifier = coalesce(identifier)

	if p.at(token.EndExpr) {
		end := p.next()
		p.depth--

		return outcome{expr: &Expression{
			Identifier: identifier,
			span:       begin.Span.Cover(end.Span),
		}}
	}

	var (
		params [][]Node
		colon  token.Token
		commas []token.Token
	)

	if p.at(token.Colon) {
		colon = p.next()
		params = [][]Node{nil}

	slots:
		for !p.eof() {
			last := len(params) - 1

			switch p.tokens[p.pos].Kind {
			case token.Comma:
				params[last] = coalesce(params[last])
				commas = append(commas, p.next())
				params = append(params, nil)

			case token.Colon:
				params[last] = mergeText(params[last], p.next())

			case token.EndExpr:
				break slots

			default:
				params[last] = p.parseContent(params[last])
			}
		}

		params[len(params)-1] = coalesce(params[len(params)-1])

		if p.at(token.EndExpr) {
			p.pos++
			p.depth--
		}
	}

	if p.depth != entry {
		p.depth = entry
		p.backtracks++

		return outcome{fallback: literal(begin, identifier, colon, params, commas)}
	}

	end := p.tokens[p.pos-1]

	return outcome{expr: &Expression{
		Identifier: identifier,
		Parameters: params,
		span:       begin.Span.Cover(end.Span),
	}}
}

// literal rebuilds an unmatched construct as text, keeping any matched
// expressions nested inside it. Slot i is followed by commas[i], if any.
func literal(
	begin token.Token,
	identifier []Node,
	colon token.Token,
	params [][]Node,
	commas []token.Token,
) []Node {
	out := mergeText(nil, begin)
	out = mergeList(out, identifier)

	if params == nil {
		return out
	}

	out = mergeText(out, colon)

	for i, slot := range params {
		out = mergeList(out, slot)

		if i < len(commas) {
			out = mergeText(out, commas[i])
		}
	}

	return out
}
