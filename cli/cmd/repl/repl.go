package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/genex/lang"
	"github.com/ardnew/genex/log"
)

const (
	parsePrompt = "➜ "
	ctrlPrompt  = " :"
)

const helpMessage = `
: Commands (press Esc to toggle mode):

  help            Print this message
  view [name]     Show or set the view (tree, native, json, yaml)
  query <expr>    Select expressions of the last input
  clear           Clear screen
  quit            Exit

Usage:
  Type a string to parse it and print it in the current view
  Type $< to list expression identifiers as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Esc to toggle between parse and command modes
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`

// inputMode selects how a submitted line is interpreted.
type inputMode int

const (
	modeParse inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	typeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// treeStyle decorates the tree view.
var treeStyle = lang.Style{
	Type:  func(s string) string { return typeStyle.Render(s) },
	Text:  func(s string) string { return resultStyle.Render(s) },
	Span:  func(s string) string { return hintStyle.Render(s) },
	Label: func(s string) string { return labelStyle.Render(s) },
}

// Config configures [Run].
type Config struct {
	// View is the initial view: tree, native, json or yaml.
	View string
	// HistoryPath is the history file. Empty keeps history in memory.
	HistoryPath string
	Logger      log.Logger
}

// Run starts the explorer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	history := NewHistory(cfg.HistoryPath)
	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "could not load history",
			slog.String("path", cfg.HistoryPath),
			slog.Any("error", err),
		)
	}

	cfg.Logger.TraceContext(ctx, "repl start",
		slog.String("view", cfg.View),
		slog.Int("history_count", history.Len()),
	)

	p := tea.NewProgram(newModel(ctx, cfg, history), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

// formatCommand formats the echo of a submitted line.
func formatCommand(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(parsePrompt) + inputStyle.Render(input)
}

// parked is the input text and cursor of the inactive mode.
type parked struct {
	text   string
	cursor int
}

// model is the Bubble Tea model for the explorer.
type model struct {
	ctxFunc      func() context.Context
	logger       log.Logger
	input        textinput.Model
	history      *History
	historyIdx   int
	tree         *lang.Tree // most recently parsed input
	view         string
	matches      fuzzy.Matches
	wordStart    int
	wordEnd      int
	suggIdx      int
	tabActive    bool
	preTabText   string
	preTabCursor int
	width        int
	mode         inputMode
	other        parked
	quitting     bool
}

const defaultWidth = 80

func newModel(ctx context.Context, cfg Config, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(parsePrompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	view := cfg.View
	if !isView(view) {
		view = "tree"
	}

	return model{
		ctxFunc:    func() context.Context { return ctx },
		logger:     cfg.Logger,
		input:      ti,
		history:    history,
		historyIdx: history.Len(),
		view:       view,
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeParse,
	}
}

func isView(name string) bool {
	for _, v := range views {
		if v == name {
			return true
		}
	}

	return false
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(parsePrompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a string to parse or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: help, view, query, clear, quit (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1), nil

	case tea.KeyDown:
		return m.historyStep(1), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		return m.setMode(1 - m.mode), nil

	case tea.KeyRunes, tea.KeySpace:
		if m.tabActive && msg.Type == tea.KeySpace {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping around.
func (m model) cycle(step int) model {
	if len(m.matches) == 0 {
		return m
	}

	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	n := len(m.matches)

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n

	case step < 0:
		m.tabActive = true
		m.preTabText, m.preTabCursor = m.input.Value(), m.input.Position()
		m.suggIdx = n - 1

	default:
		m.tabActive = true
		m.preTabText, m.preTabCursor = m.input.Value(), m.input.Position()
		m.suggIdx = 0
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word with replacement and moves
// the cursor after it.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes the matches for the word at the cursor. With
// autoConfirm, a word equal to its only candidate is accepted.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// setMode switches to mode, parking the input of the mode being left.
func (m model) setMode(mode inputMode) model {
	if mode == m.mode {
		return m
	}

	current := parked{text: m.input.Value(), cursor: m.input.Position()}

	m.mode = mode
	m.input.SetValue(m.other.text)
	m.input.SetCursor(m.other.cursor)
	m.other = current

	if mode == modeCtrl {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
	} else {
		m.input.Prompt = promptStyle.Render(parsePrompt)
	}

	m.tabActive = false
	refreshMatches(&m, false)

	return m
}

// historyStep moves through history by step. Recalling an entry switches to
// the mode it was submitted in. Stepping past the newest entry clears the
// input.
func (m model) historyStep(step int) model {
	n := m.history.Len()
	if n == 0 {
		return m
	}

	idx := min(max(m.historyIdx+step, 0), n)
	if idx == m.historyIdx {
		return m
	}

	m.historyIdx = idx
	m.tabActive = false

	entry, err := m.history.Entry(idx)
	if err != nil {
		m.input.SetValue("")
		refreshMatches(&m, false)

		return m
	}

	m = m.setMode(entry.Mode)
	m.historyIdx = idx
	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	refreshMatches(&m, false)

	return m
}

func (m model) executeInput() (model, tea.Cmd) {
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.other = parked{}
	m.matches = nil

	if err := m.history.Add(raw, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not write history",
			slog.Any("error", err),
		)
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(strings.TrimSpace(raw))
	}

	return m.executeParse(raw)
}

// executeParse parses input and prints it in the current view. Whitespace is
// significant in parse mode, so input is not trimmed.
func (m model) executeParse(input string) (model, tea.Cmd) {
	echo := tea.Println(formatCommand(modeParse, input))

	tree, err := lang.ParseString(m.ctxFunc(), input, lang.WithLogger(m.logger))
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	m.tree = tree

	out, err := render(m.ctxFunc(), tree, m.view)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(out))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	name, args, _ := strings.Cut(input, " ")
	args = strings.TrimSpace(args)

	echo := tea.Println(formatCommand(modeCtrl, input))

	m.logger.TraceContext(m.ctxFunc(), "repl command",
		slog.String("command", name),
		slog.String("args", args),
	)

	switch name {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(hintStyle.Render(helpMessage)))

	case "c", "clear":
		return m, tea.ClearScreen

	case "v", "view":
		if args == "" {
			return m, tea.Sequence(echo, tea.Println(resultStyle.Render(m.view)))
		}

		if !isView(args) {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render(
				"unknown view: "+args+" (one of "+strings.Join(views, ", ")+")")))
		}

		m.view = args

		if m.tree == nil {
			return m, echo
		}

		out, err := render(m.ctxFunc(), m.tree, m.view)
		if err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
		}

		return m, tea.Sequence(echo, tea.Println(out))

	case "query":
		return m, tea.Sequence(echo, tea.Println(m.query(args)))

	default:
		return m, tea.Sequence(echo, tea.Println(
			errorStyle.Render("unknown command: "+name+" (try 'help')")))
	}
}

// query runs predicate against the last parsed input and formats the result.
func (m model) query(predicate string) string {
	switch {
	case predicate == "":
		return errorStyle.Render("usage: query <predicate>")

	case m.tree == nil:
		return errorStyle.Render("nothing parsed yet")
	}

	matches, err := m.tree.Query(m.ctxFunc(), predicate)
	if err != nil {
		return errorStyle.Render("error: " + err.Error())
	}

	if len(matches) == 0 {
		return hintStyle.Render("no matches")
	}

	lines := make([]string, len(matches))
	for i, match := range matches {
		lines[i] = fmt.Sprintf("%s %s",
			hintStyle.Render(fmt.Sprintf("%d:%d", match.Env.Offset, match.Depth)),
			resultStyle.Render(match.Env.Source))
	}

	return strings.Join(lines, "\n")
}

// render formats tree in view.
func render(ctx context.Context, tree *lang.Tree, view string) (string, error) {
	var (
		sb  strings.Builder
		err error
	)

	switch view {
	case "native":
		err = tree.Format(ctx, &sb)

	case "json":
		err = tree.FormatJSON(ctx, &sb, 2)

	case "yaml":
		err = tree.FormatYAML(ctx, &sb, 2)

	default:
		err = tree.Print(&sb, treeStyle)
	}

	return strings.TrimRight(sb.String(), "\n"), err
}
