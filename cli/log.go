package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/log"
)

// logFormat configures the logger format as a side effect of parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// Kong calls it while parsing --log-format, so the format applies to errors
// reported later in the same parse.
func (f *logFormat) UnmarshalText(text []byte) error {
	format, err := log.ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = logFormat(text)
	log.Config(log.WithFormat(format))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	level, err := log.ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = logLevel(text)
	log.Config(log.WithLevel(level))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format, or none."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(log.LevelNames(), ","),
		"logFormatEnum": strings.Join(log.FormatNames(), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logger option. The returned function is called
// when the command returns.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	level, _ := log.ParseLevel(string(f.Level))
	format, _ := log.ParseFormat(string(f.Format))

	logger := log.Config(
		log.WithLevel(level),
		log.WithFormat(format),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	logger.DebugContext(ctx, "logger initialized",
		slog.String("level", level.String()),
		slog.String("format", format.String()),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() {
		log.Default().TraceContext(ctx, "command complete")
	}
}

// scan applies logger flags found in args before kong parses them, so that
// the logger is configured regardless of flag position. Boolean flags do not
// pass through UnmarshalText, so they are only applied here and in start.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, value, assigned := strings.Cut(arg, "=")

		negated := strings.HasPrefix(name, "--no-log-")
		if !negated && !strings.HasPrefix(name, "--log-") {
			continue
		}

		// Non-boolean flags take the next argument unless assigned.
		operand := func() string {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		key := strings.TrimPrefix(strings.TrimPrefix(name, "--no-log-"), "--log-")

		switch key {
		case "level":
			_ = f.Level.UnmarshalText([]byte(operand()))

		case "format":
			_ = f.Format.UnmarshalText([]byte(operand()))

		case "pretty":
			if on, ok := boolFlag(value, assigned, negated); ok {
				f.Pretty = on
				log.Config(log.WithPretty(on))
			}

		case "caller":
			if on, ok := boolFlag(value, assigned, negated); ok {
				f.Caller = on
				log.Config(log.WithCaller(on))
			}
		}
	}
}

// boolFlag returns the state set by a boolean flag written as --flag,
// --flag=value or --no-flag.
func boolFlag(value string, assigned, negated bool) (on, ok bool) {
	on = true

	if assigned {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return false, false
		}

		on = v
	}

	return on != negated, true
}
