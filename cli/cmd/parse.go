package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ardnew/genex/lang"
	"github.com/ardnew/genex/log"
)

// Parse prints the tree of each input string.
type Parse struct {
	Inputs []string `arg:"" help:"Generator expression strings. Without any, each line of --source is parsed." name:"string" optional:""`
	Color  string   `default:"auto" enum:"auto,always,never" help:"Colorize output (${enum})." short:"c"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	inputs := p.Inputs

	if len(inputs) == 0 {
		src := sourcesFrom(ctx)
		if src.IsZero() {
			return ErrNoSource
		}

		lines, err := src.Lines()
		if err != nil {
			return err
		}

		inputs = lines
	}

	trees, err := lang.ParseAll(ctx, inputs, lang.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	w := output(ctx)
	style, header := treeStyle(colorEnabled(p.Color, w))

	for i, tree := range trees {
		if len(trees) > 1 {
			if _, err := fmt.Fprintf(w, "%s %s\n",
				header("["+strconv.Itoa(i)+"]"), strconv.Quote(tree.Source)); err != nil {
				return err
			}
		}

		if err := tree.Print(w, style); err != nil {
			return err
		}
	}

	log.Default().DebugContext(ctx, "parsed inputs", slog.Int("input_count", len(trees)))

	return nil
}

// colorEnabled resolves a --color mode for w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd()))
}

// treeStyle returns the [lang.Style] of tree listings and a header painter.
func treeStyle(enabled bool) (lang.Style, func(string) string) {
	paint := func(attrs ...color.Attribute) func(string) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return func(s string) string { return c.Sprint(s) }
	}

	return lang.Style{
		Type:  paint(color.FgMagenta, color.Bold),
		Text:  paint(color.FgGreen),
		Span:  paint(color.FgHiBlack),
		Label: paint(color.FgYellow),
	}, paint(color.FgCyan, color.Bold)
}
