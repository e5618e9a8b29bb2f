package log

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrUnknownFormat is returned by [ParseFormat] for unrecognized names.
var ErrUnknownFormat = errors.New("unknown log format")

// Format selects the layout of log records.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the format of a logger made without [WithFormat].
const DefaultFormat = FormatText

// Formats returns all record formats.
func Formats() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for _, f := range []Format{FormatText, FormatJSON} {
			if !yield(f) {
				return
			}
		}
	}
}

// FormatNames returns the names of [Formats].
func FormatNames() []string {
	var names []string
	for f := range Formats() {
		names = append(names, f.String())
	}

	return names
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}

	return DefaultFormat, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
