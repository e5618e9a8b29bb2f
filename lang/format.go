package lang

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ardnew/genex/lang/token"
)

// Format writes the tree in native syntax, rebuilt from its structure.
// The output equals the parsed source.
func (t *Tree) Format(_ context.Context, w io.Writer) error {
	var sb strings.Builder

	t.render(&sb, t.Nodes)

	_, err := io.WriteString(w, sb.String())

	return err
}

// String returns the native rendering of the tree.
func (t *Tree) String() string {
	var sb strings.Builder

	t.render(&sb, t.Nodes)

	return sb.String()
}

func (t *Tree) render(sb *strings.Builder, list []Node) {
	for _, n := range list {
		e, ok := n.(*Expression)
		if !ok {
			sb.WriteString(t.Text(n))

			continue
		}

		sb.WriteString(token.BeginExpr.Literal())
		t.render(sb, e.Identifier)

		for i, slot := range e.Parameters {
			if i == 0 {
				sb.WriteString(token.Colon.Literal())
			} else {
				sb.WriteString(token.Comma.Literal())
			}

			t.render(sb, slot)
		}

		sb.WriteString(token.EndExpr.Literal())
	}
}

// FormatJSON writes the tree as JSON to the writer. Delimiters such as '<'
// are not escaped.
func (t *Tree) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(t.ToNative()); err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", "json"))
	}

	return nil
}

// FormatYAML writes the tree as YAML to the writer.
func (t *Tree) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, t.ToNative(), opts...)
	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", "yaml"))
	}

	_, err = w.Write(data)

	return err
}

// FormatMsgpack writes the tree as MessagePack to the writer.
// Map keys are sorted so equal trees encode identically.
func (t *Tree) FormatMsgpack(_ context.Context, w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)

	if err := enc.Encode(t.ToNative()); err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", "msgpack"))
	}

	return nil
}

// Style decorates the parts of a [Tree.Print] listing.
// Nil fields leave their part undecorated.
type Style struct {
	Type  func(string) string
	Text  func(string) string
	Span  func(string) string
	Label func(string) string
}

func (s Style) apply(fn func(string) string, v string) string {
	if fn == nil {
		return v
	}

	return fn(v)
}

// Print writes an indented listing of the tree structure.
func (t *Tree) Print(w io.Writer, style Style) error {
	var sb strings.Builder

	t.print(&sb, style, t.Nodes, 0)

	_, err := io.WriteString(w, sb.String())

	return err
}

func (t *Tree) print(sb *strings.Builder, style Style, list []Node, depth int) {
	pad := strings.Repeat("  ", depth)

	for _, n := range list {
		sb.WriteString(pad)
		sb.WriteString(style.apply(style.Type, n.Type().String()))
		sb.WriteByte(' ')
		sb.WriteString(style.apply(style.Span, "@"+n.Span().String()))

		e, ok := n.(*Expression)
		if !ok {
			sb.WriteByte(' ')
			sb.WriteString(style.apply(style.Text, strconv.Quote(t.Text(n))))
			sb.WriteByte('\n')

			continue
		}

		sb.WriteByte('\n')
		sb.WriteString(pad + "  ")
		sb.WriteString(style.apply(style.Label, "identifier:"))
		sb.WriteByte('\n')
		t.print(sb, style, e.Identifier, depth+2)

		for i, slot := range e.Parameters {
			sb.WriteString(pad + "  ")
			sb.WriteString(style.apply(style.Label, "parameter "+strconv.Itoa(i)+":"))
			sb.WriteByte('\n')
			t.print(sb, style, slot, depth+2)
		}
	}
}
