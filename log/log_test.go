package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON record %q: %v", data, err)
	}

	return m
}

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("Level() = %v, want %v", got, DefaultLevel)
	}

	if got := logger.Format(); got != DefaultFormat {
		t.Errorf("Format() = %v, want %v", got, DefaultFormat)
	}

	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("debug record emitted at default level: %q", buf.String())
	}

	logger.Info("shown")

	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("missing info record: %q", buf.String())
	}
}

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	var logger Logger

	logger.Trace("x")
	logger.InfoContext(context.Background(), "x", slog.Int("n", 1))
	logger.Error("x")

	if got := logger.With(slog.String("k", "v")); got.Logger != nil {
		t.Error("With on zero Logger returned a live logger")
	}

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("Level() = %v, want %v", got, DefaultLevel)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(Logger)
		level string
	}{
		{"trace", func(l Logger) { l.Trace("m") }, "TRACE"},
		{"debug", func(l Logger) { l.Debug("m") }, "DEBUG"},
		{"info", func(l Logger) { l.Info("m") }, "INFO"},
		{"warn", func(l Logger) { l.Warn("m") }, "WARN"},
		{"error", func(l Logger) { l.Error("m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON)))

			rec := decodeJSON(t, buf.Bytes())
			if rec["level"] != tt.level {
				t.Errorf("level = %v, want %s", rec["level"], tt.level)
			}
		})
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn))
	logger.Info("dropped")
	logger.Trace("dropped")

	if buf.Len() != 0 {
		t.Fatalf("records below level emitted: %q", buf.String())
	}

	logger.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))
	derived := base.With(slog.String("component", "parser"))

	derived.Info("hello", slog.Int("node_count", 3))

	rec := decodeJSON(t, buf.Bytes())
	if rec["component"] != "parser" {
		t.Errorf("component = %v", rec["component"])
	}

	if rec["node_count"] != float64(3) {
		t.Errorf("node_count = %v", rec["node_count"])
	}

	if _, ok := rec["time"]; ok {
		t.Error("time present with layout none")
	}

	buf.Reset()
	base.Info("plain")

	if strings.Contains(buf.String(), "component") {
		t.Errorf("With mutated the base logger: %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer

	base := Make(&first, WithLevel(LevelError))
	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	wrapped.Debug("to second")
	base.Debug("nowhere")

	if first.Len() != 0 {
		t.Errorf("base logger changed: %q", first.String())
	}

	if !strings.Contains(second.String(), "to second") {
		t.Errorf("wrapped output missing: %q", second.String())
	}

	if wrapped.Format() != base.Format() {
		t.Error("Wrap did not inherit format")
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithCaller(true))

	for _, emit := range []func(){
		func() { logger.Info("m") },
		func() { logger.InfoContext(context.Background(), "m") },
	} {
		buf.Reset()
		emit()

		rec := decodeJSON(t, buf.Bytes())

		src, ok := rec["source"].(map[string]any)
		if !ok {
			t.Fatalf("missing source: %v", rec)
		}

		if file, _ := src["file"].(string); filepath.Base(file) != "log_test.go" {
			t.Errorf("source file = %q, want log_test.go", file)
		}
	}
}

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		layout   string
		contains string
	}{
		{"RFC3339", "T"},
		{"kitchen", "M"},
		{"2006", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			var buf bytes.Buffer

			Make(&buf, WithFormat(FormatJSON), WithTimeLayout(tt.layout)).Info("m")

			rec := decodeJSON(t, buf.Bytes())

			ts, _ := rec["time"].(string)
			if !strings.Contains(ts, tt.contains) {
				t.Errorf("time = %q, want substring %q", ts, tt.contains)
			}
		})
	}
}

func TestPackageFunctions(t *testing.T) {
	saved := Default()
	defer SetDefault(saved)

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))

	tests := []struct {
		fn    func(string, ...slog.Attr)
		level string
	}{
		{Trace, "TRACE"},
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warn, "WARN"},
		{Error, "ERROR"},
	}

	for _, tt := range tests {
		buf.Reset()
		tt.fn("pkg", slog.String("key", "value"))

		rec := decodeJSON(t, buf.Bytes())
		if rec["level"] != tt.level || rec["key"] != "value" {
			t.Errorf("record = %v, want level %s", rec, tt.level)
		}
	}
}
