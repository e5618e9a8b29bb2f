package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger is a leveled structured logger. Loggers are values and safe for
// concurrent use; the zero Logger discards all records.
type Logger struct {
	*slog.Logger

	cfg config
}

// Make returns a logger writing to w, configured by opts on top of
// [DefaultLevel], [DefaultFormat] and [DefaultTimeLayout].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := defaultConfig(w).with(opts...)

	return Logger{Logger: slog.New(cfg.handler()), cfg: cfg}
}

// Wrap returns a logger with the configuration of l overridden by opts.
// Attributes added to l with [Logger.With] are not carried over.
// Wrapping the zero Logger is the same as calling [Make] with a nil writer.
func (l Logger) Wrap(opts ...Option) Logger {
	base := l.cfg
	if l.Logger == nil {
		base = defaultConfig(nil)
	}

	cfg := base.with(opts...)

	return Logger{Logger: slog.New(cfg.handler()), cfg: cfg}
}

// With returns a logger that adds attrs to every record.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil || len(attrs) == 0 {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		cfg:    l.cfg,
	}
}

// Level returns the minimum level of emitted records.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.cfg.level
}

// Format returns the record layout.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.cfg.format
}

// Output returns the destination writer.
func (l Logger) Output() io.Writer {
	if l.Logger == nil {
		return io.Discard
	}

	return l.cfg.output
}

// TraceContext logs at [LevelTrace].
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 1, LevelTrace, msg, attrs)
}

// DebugContext logs at [LevelDebug].
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 1, LevelDebug, msg, attrs)
}

// InfoContext logs at [LevelInfo].
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 1, LevelInfo, msg, attrs)
}

// WarnContext logs at [LevelWarn].
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 1, LevelWarn, msg, attrs)
}

// ErrorContext logs at [LevelError].
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 1, LevelError, msg, attrs)
}

// Trace logs at [LevelTrace] with the context of [DefaultContextProvider].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 1, LevelTrace, msg, attrs)
}

// Debug logs at [LevelDebug] with the context of [DefaultContextProvider].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 1, LevelDebug, msg, attrs)
}

// Info logs at [LevelInfo] with the context of [DefaultContextProvider].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 1, LevelInfo, msg, attrs)
}

// Warn logs at [LevelWarn] with the context of [DefaultContextProvider].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 1, LevelWarn, msg, attrs)
}

// Error logs at [LevelError] with the context of [DefaultContextProvider].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 1, LevelError, msg, attrs)
}

// log emits a record attributed to the caller skip frames above log.
func (l Logger) log(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr

	if l.cfg.caller {
		var pcs [1]uintptr

		// runtime.Callers, log, then skip frames of this package.
		runtime.Callers(skip+2, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}

// DefaultContextProvider supplies the context of the logging functions and
// methods without a context parameter.
var DefaultContextProvider = context.TODO

var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr, WithPretty(true))
	defaultLog.Store(&l)
}

// Default returns the process-wide logger used by the package-level logging
// functions.
func Default() Logger { return *defaultLog.Load() }

// Config replaces the process-wide logger with one derived from it by opts,
// and returns the new logger.
func Config(opts ...Option) Logger {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)

	return l
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) { defaultLog.Store(&l) }

// Trace logs at [LevelTrace] with the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 1, LevelTrace, msg, attrs)
}

// Debug logs at [LevelDebug] with the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 1, LevelDebug, msg, attrs)
}

// Info logs at [LevelInfo] with the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 1, LevelInfo, msg, attrs)
}

// Warn logs at [LevelWarn] with the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 1, LevelWarn, msg, attrs)
}

// Error logs at [LevelError] with the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 1, LevelError, msg, attrs)
}
