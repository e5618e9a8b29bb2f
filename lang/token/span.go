package token

import "fmt"

// Span is a byte range [Start, Start+Len) in a source string.
//
// The start of a span never moves. Its length only grows, and only to cover
// another span that begins exactly where it ends.
type Span struct {
	Start uint32
	Len   uint32
}

// MakeSpan returns the span covering [start, end).
func MakeSpan(start, end uint32) Span {
	if end < start {
		end = start
	}

	return Span{Start: start, Len: end - start}
}

// End returns the exclusive end offset.
func (s Span) End() uint32 { return s.Start + s.Len }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.Len == 0 }

// Adjoins reports whether other begins exactly where s ends.
func (s Span) Adjoins(other Span) bool { return s.End() == other.Start }

// Extend returns s grown by n bytes.
func (s Span) Extend(n uint32) Span {
	s.Len += n

	return s
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End()
	if other.Start < start {
		start = other.Start
	}

	if other.End() > end {
		end = other.End()
	}

	return MakeSpan(start, end)
}

// Text returns the bytes of src covered by s.
// Out-of-range spans are clipped to src.
func (s Span) Text(src string) string {
	start, end := int(s.Start), int(s.End())
	if start > len(src) {
		return ""
	}

	if end > len(src) {
		end = len(src)
	}

	return src[start:end]
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End())
}
