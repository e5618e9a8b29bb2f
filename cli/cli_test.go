package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/genex/cli/cmd"
)

func testParser(t *testing.T, cli *CLI, config string, args ...string) (*CLI, func(context.Context) error) {
	t.Helper()

	restoreLogger(t)

	path := filepath.Join(t.TempDir(), ConfigFile)
	if config != "" {
		if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var ctx context.Context

	parser, err := newParser(func() context.Context { return ctx }, cli, path)
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}

	return cli, func(c context.Context) error {
		ctx = cmd.WithContext(c, ktx)

		return ktx.Run(ctx, cli)
	}
}

func TestNewParser_DefaultCommand(t *testing.T) {
	cli, _ := testParser(t, &CLI{}, "", "$<A:b>")

	if len(cli.Parse.Inputs) != 1 || cli.Parse.Inputs[0] != "$<A:b>" {
		t.Errorf("parse inputs = %q, want [$<A:b>]", cli.Parse.Inputs)
	}

	if cli.Log.Level != "info" || cli.Log.Format != "text" {
		t.Errorf("log defaults = (%s, %s), want (info, text)", cli.Log.Level, cli.Log.Format)
	}
}

func TestNewParser_Configuration(t *testing.T) {
	const config = `
[log]
level = "debug"

[parse]
color = "never"
`

	cli, _ := testParser(t, &CLI{}, config, "parse", "x")

	if cli.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cli.Log.Level)
	}

	if cli.Parse.Color != "never" {
		t.Errorf("parse color = %q, want never", cli.Parse.Color)
	}

	cli, _ = testParser(t, &CLI{}, config, "--log-level=warn", "parse", "x")

	if cli.Log.Level != "warn" {
		t.Errorf("flag did not override configuration: level = %q", cli.Log.Level)
	}
}

func TestRun_Parse(t *testing.T) {
	var buf bytes.Buffer

	_, run := testParser(t, &CLI{}, "", "parse", "--color=never", "$<A:b>x")

	if err := run(cmd.WithOutput(context.Background(), &buf)); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Expression", "identifier:", `"A"`, `"b"`, `"x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestRun_Grammar(t *testing.T) {
	var buf bytes.Buffer

	_, run := testParser(t, &CLI{}, "", "grammar")

	if err := run(cmd.WithOutput(context.Background(), &buf)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Content") {
		t.Errorf("grammar output = %q", buf.String())
	}
}
