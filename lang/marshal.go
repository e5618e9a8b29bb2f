package lang

import (
	"encoding/json"
)

// MarshalJSON implements json.Marshaler for Tree.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToNative())
}

// ToNative converts the tree to native Go values: a text node becomes its
// source string, an expression becomes a map with keys "identifier",
// "parameters" (omitted without ':'), "offset" and "length".
func (t *Tree) ToNative() []any {
	return t.nativeList(t.Nodes)
}

func (t *Tree) nativeList(list []Node) []any {
	out := make([]any, 0, len(list))
	for _, n := range list {
		out = append(out, t.native(n))
	}

	return out
}

func (t *Tree) native(n Node) any {
	switch n := n.(type) {
	case *Text:
		return t.Text(n)

	case *Expression:
		m := map[string]any{
			"identifier": t.nativeList(n.Identifier),
			"offset":     n.span.Start,
			"length":     n.span.Len,
		}

		if n.Parameters != nil {
			params := make([]any, len(n.Parameters))
			for i, slot := range n.Parameters {
				params[i] = t.nativeList(slot)
			}

			m["parameters"] = params
		}

		return m

	default:
		return nil
	}
}
