package log

import (
	"errors"
	"iter"
	"log/slog"
	"strings"
)

// ErrUnknownLevel is returned by [ParseLevel] for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the severity of a log record.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the level of a logger made without [WithLevel].
const DefaultLevel = LevelInfo

// String returns the lower-case level name, or the [slog] rendering for
// levels between the named ones.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return strings.ToLower(slog.Level(l).String())
	}
}

// Levels returns the named levels from least to most severe.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, l := range []Level{
			LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError,
		} {
			if !yield(l) {
				return
			}
		}
	}
}

// LevelNames returns the names of [Levels].
func LevelNames() []string {
	var names []string
	for l := range Levels() {
		names = append(names, l.String())
	}

	return names
}

// ParseLevel parses a level name, case-insensitively. Besides "trace", any
// string accepted by [slog.Level.UnmarshalText] is valid, such as "warn+2".
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, LevelTrace.String()) {
		return LevelTrace, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel, errors.Join(ErrUnknownLevel, err)
	}

	return Level(l), nil
}
