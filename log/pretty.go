package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler. Styles are bound to the
// renderer of the output writer, so a non-terminal writer gets plain text.
type palette struct {
	key, str, num, yes, no, dur, when, null lipgloss.Style
	levels                                  map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		yes:  fg("2"),
		no:   fg("1"),
		dur:  fg("5"),
		when: fg("4"),
		null: fg("8").Italic(true),
		levels: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("5"),
			slog.LevelDebug:        fg("4"),
			slog.LevelInfo:         fg("2"),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

func (p *palette) level(l slog.Level) lipgloss.Style {
	best, style := slog.Level(LevelTrace), p.levels[slog.Level(LevelTrace)]
	for lvl, s := range p.levels {
		if lvl <= l && lvl >= best {
			best, style = lvl, s
		}
	}

	return style
}

// prettyHandler renders records for a human reader. FormatText puts each
// record on one line as key=value pairs. FormatJSON spreads the record over
// an indented block, one field per line.
type prettyHandler struct {
	opts    slog.HandlerOptions
	format  Format
	colors  *palette
	mu      *sync.Mutex
	w       io.Writer
	attrs   []slog.Attr
	prefix  string
}

func newPrettyHandler(
	w io.Writer,
	format Format,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		format: format,
		colors: newPalette(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, r.NumAttrs()+len(h.attrs)+4)

	add := func(a slog.Attr) {
		if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
			a = h.opts.ReplaceAttr(nil, a)
		}

		if !a.Equal(slog.Attr{}) {
			fields = append(fields, a)
		}
	}

	if !r.Time.IsZero() {
		add(slog.Time(slog.TimeKey, r.Time))
	}

	levelName := strings.ToUpper(Level(r.Level).String())
	fields = append(fields, slog.String(slog.LevelKey,
		h.colors.level(r.Level).Render(levelName)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			add(slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	add(slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		fields = append(fields, a)

		return true
	})

	var buf bytes.Buffer

	switch h.format {
	case FormatJSON:
		h.writeBlock(&buf, fields)
	default:
		h.writeLine(&buf, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) writeLine(buf *bytes.Buffer, fields []slog.Attr) {
	for i, a := range flatten("", fields) {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.colors.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.value(a))
	}

	buf.WriteByte('\n')
}

func (h *prettyHandler) writeBlock(buf *bytes.Buffer, fields []slog.Attr) {
	buf.WriteString("{\n")

	for i, a := range flatten("", fields) {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(h.colors.key.Render(a.Key))
		buf.WriteString(": ")
		buf.WriteString(h.value(a))
	}

	buf.WriteString("\n}\n")
}

// flatten expands group attributes into dotted keys.
func flatten(prefix string, attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))

	for _, a := range attrs {
		v := a.Value.Resolve()
		if v.Kind() != slog.KindGroup {
			out = append(out, slog.Attr{Key: prefix + a.Key, Value: v})

			continue
		}

		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}

		out = append(out, flatten(sub, v.Group())...)
	}

	return out
}

func (h *prettyHandler) value(a slog.Attr) string {
	v := a.Value

	// The level is rendered before flattening.
	if a.Key == slog.LevelKey {
		return v.String()
	}

	switch v.Kind() {
	case slog.KindString:
		return h.colors.str.Render(v.String())

	case slog.KindInt64:
		return h.colors.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.colors.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.colors.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.colors.yes.Render("true")
		}

		return h.colors.no.Render("false")

	case slog.KindDuration:
		return h.colors.dur.Render(v.Duration().String())

	case slog.KindTime:
		return h.colors.when.Render(v.Time().String())

	default:
		if v.Any() == nil {
			return h.colors.null.Render("null")
		}

		return h.colors.str.Render(v.String())
	}
}
