package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPretty_Text(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithPretty(true),
		WithFormat(FormatText),
		WithTimeLayout("none"),
	).With(slog.String("component", "lexer"))

	logger.Info("tokenized", slog.Int("token_count", 7), slog.Bool("saw_expression", true))

	got := buf.String()
	want := "level=INFO msg=tokenized component=lexer token_count=7 saw_expression=true\n"

	// Output to a buffer carries no color sequences.
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPretty_JSONBlock(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithFormat(FormatJSON), WithTimeLayout("none"))
	logger.Warn("slow", slog.Group("cache", slog.Bool("hit", false)))

	want := strings.Join([]string{
		"{",
		"  level: WARN,",
		"  msg: slow,",
		"  cache.hit: false",
		"}",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPretty_Group(t *testing.T) {
	var buf bytes.Buffer

	h := newPrettyHandler(&buf, FormatText, &slog.HandlerOptions{})
	slog.New(h).WithGroup("req").Info("m", slog.String("id", "7"))

	if !strings.Contains(buf.String(), "req.id=7") {
		t.Errorf("group prefix missing: %q", buf.String())
	}
}

func TestPretty_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithLevel(LevelTrace), WithTimeLayout("none"))
	logger.Trace("deep")

	if !strings.HasPrefix(buf.String(), "level=TRACE ") {
		t.Errorf("got %q", buf.String())
	}
}
