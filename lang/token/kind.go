package token

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind classifies a token.
type Kind int

const (
	Text      Kind = iota // text
	BeginExpr             // begin
	EndExpr               // end
	Colon                 // colon
	Comma                 // comma
)

// Literal returns the fixed source text of a delimiter kind, or the empty
// string for [Text].
func (k Kind) Literal() string {
	switch k {
	case BeginExpr:
		return "$<"

	case EndExpr:
		return ">"

	case Colon:
		return ":"

	case Comma:
		return ","

	default:
		return ""
	}
}
