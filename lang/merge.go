package lang

import (
	"github.com/ardnew/genex/lang/token"
)

// lastText returns the final node of list if it is a text node.
func lastText(list []Node) (*Text, bool) {
	if len(list) == 0 {
		return nil, false
	}

	t, ok := list[len(list)-1].(*Text)

	return t, ok
}

// mergeText appends the source text of tok to list, extending the final text
// node when tok begins exactly where it ends.
func mergeText(list []Node, tok token.Token) []Node {
	if last, ok := lastText(list); ok && last.span.Adjoins(tok.Span) {
		last.extend(tok.Span)

		return list
	}

	return append(list, NewText(tok.Span))
}

// mergeList appends the nodes of source to list. When the final node of list
// and the first node of source are contiguous text nodes, the former absorbs
// the latter and the absorbed node is dropped.
func mergeList(list, source []Node) []Node {
	if len(source) == 0 {
		return list
	}

	if last, ok := lastText(list); ok {
		if first, ok := source[0].(*Text); ok && last.span.Adjoins(first.span) {
			last.absorb(first)

			source = source[1:]
		}
	}

	return append(list, source...)
}

// coalesce returns list with every run of contiguous text nodes merged into
// its first node.
func coalesce(list []Node) []Node {
	if len(list) < 2 {
		return list
	}

	out := make([]Node, 0, len(list))
	for i := range list {
		out = mergeList(out, list[i:i+1])
	}

	return out
}
