package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/genex/lang/token"
)

// identifiers are the well-known expression identifiers offered after "$<".
var identifiers = []string{
	"AND", "ANGLE-R", "BOOL", "BUILD_INTERFACE", "BUILD_LOCAL_INTERFACE",
	"COMMA", "COMMAND_CONFIG", "COMPILE_LANGUAGE", "COMPILE_LANG_AND_ID",
	"CONFIG", "CXX_COMPILER_ID", "CXX_COMPILER_VERSION", "C_COMPILER_ID",
	"C_COMPILER_VERSION", "DEVICE_LINK", "EQUAL", "FILTER", "GENEX_EVAL",
	"HOST_LINK", "IF", "INSTALL_INTERFACE", "INSTALL_PREFIX", "IN_LIST",
	"JOIN", "LINK_LANGUAGE", "LINK_LANG_AND_ID", "LINK_ONLY", "LIST",
	"LOWER_CASE", "MAKE_C_IDENTIFIER", "NOT", "OR", "OUTPUT_CONFIG", "PATH",
	"PATH_EQUAL", "PLATFORM_ID", "QUOTE", "REMOVE_DUPLICATES", "SEMICOLON",
	"SHELL_PATH", "STREQUAL", "TARGET_BUNDLE_DIR", "TARGET_EXISTS",
	"TARGET_FILE", "TARGET_FILE_DIR", "TARGET_FILE_NAME", "TARGET_GENEX_EVAL",
	"TARGET_LINKER_FILE", "TARGET_NAME_IF_EXISTS", "TARGET_OBJECTS",
	"TARGET_PDB_FILE", "TARGET_POLICY", "TARGET_PROPERTY", "TARGET_SONAME_FILE",
	"UPPER_CASE", "VERSION_EQUAL", "VERSION_GREATER", "VERSION_GREATER_EQUAL",
	"VERSION_LESS", "VERSION_LESS_EQUAL",
}

// ctrlCommands are the command-mode commands.
var ctrlCommands = []string{"clear", "help", "query", "quit", "view"}

// views are the arguments of the "view" command.
var views = []string{"json", "native", "tree", "yaml"}

// isWordBoundary reports whether r ends a completion word. Hyphens are not
// boundaries since identifiers such as ANGLE-R contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '$', '<', '>', ':', ',', ';', '(', ')', '"', '\'':
		return true
	}

	return false
}

// wordBounds returns the word around cursor and its byte range in input.
// The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// afterBegin reports whether the word at start directly follows "$<".
func afterBegin(input string, start int) bool {
	return strings.HasSuffix(input[:start], token.BeginExpr.Literal())
}

// candidates returns the completion candidates for the word at start, and
// whether an empty word should list all of them.
func candidates(mode inputMode, input string, start int) ([]string, bool) {
	if mode == modeParse {
		if afterBegin(input, start) {
			return identifiers, true
		}

		return nil, false
	}

	switch fields := strings.Fields(input[:start]); {
	case len(fields) == 0:
		return ctrlCommands, false

	case len(fields) == 1 && fields[0] == "view":
		return views, true

	default:
		return nil, false
	}
}

// computeMatches returns the ranked matches for the word at the cursor and
// the word's byte range.
func (m model) computeMatches() (fuzzy.Matches, int, int) {
	input := m.input.Value()

	word, start, end := wordBounds(input, m.input.Position())

	list, browse := candidates(m.mode, input, start)
	if len(list) == 0 {
		return nil, start, end
	}

	if word == "" {
		if !browse {
			return nil, start, end
		}

		all := make(fuzzy.Matches, len(list))
		for i, c := range list {
			all[i] = fuzzy.Match{Str: c, Index: i}
		}

		return all, start, end
	}

	return fuzzy.Find(word, list), start, end
}

// renderCandidateBar renders matches on one line no wider than width,
// ending with an ellipsis when some do not fit.
func renderCandidateBar(matches fuzzy.Matches, selected int, tabbing bool, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")

	var (
		b    strings.Builder
		used int
	)

	for i, match := range matches {
		rendered := renderCandidate(match, tabbing && i == selected)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += len(sep)
		}

		if i > 0 && used+w+len(sep)+lipgloss.Width(ellipsis) > width {
			b.WriteString(sep + ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders match with its matched characters emphasized.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, emphasis := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		base, emphasis = selectedStyle, selectedStyle.Bold(true)
	}

	hit := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		hit[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if hit[i] {
			b.WriteString(emphasis.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
