package cli

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/cli/cmd"
)

const testConfig = `
pretty_print = true
source = ["a.txt", "b.txt"]

[log]
level = "debug"
time-layout = "Kitchen"

[parse]
color = "never"

[query]
count = true
limit = 3
ratio = 0.5
`

func mustLoad(t *testing.T, doc string) kong.Resolver {
	t.Helper()

	r, err := loadTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("loadTOML: %v", err)
	}

	return r
}

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func commandPath(name string) *kong.Path {
	return &kong.Path{Command: &kong.Command{Name: name}}
}

func TestLoadTOML_Resolve(t *testing.T) {
	r := mustLoad(t, testConfig)

	tests := []struct {
		name   string
		parent *kong.Path
		flag   string
		want   any
	}{
		{"table_key", nil, "log-level", "debug"},
		{"hyphenated_key", nil, "log-time-layout", "Kitchen"},
		{"underscore_key", nil, "pretty-print", true},
		{"command_table", commandPath("parse"), "color", "never"},
		{"command_bool", commandPath("query"), "count", true},
		{"integer", commandPath("query"), "limit", "3"},
		{"float", commandPath("query"), "ratio", "0.5"},
		{"missing", nil, "log-format", nil},
		{"other_command", commandPath("fmt"), "color", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(nil, tt.parent, flagNamed(tt.flag))
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.flag, err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestLoadTOML_Array(t *testing.T) {
	r := mustLoad(t, testConfig)

	got, err := r.Resolve(nil, nil, flagNamed("source"))
	if err != nil {
		t.Fatal(err)
	}

	if list, ok := got.([]string); !ok || !slices.Equal(list, []string{"a.txt", "b.txt"}) {
		t.Errorf("Resolve(source) = %#v, want [a.txt b.txt]", got)
	}
}

func TestLoadTOML_Invalid(t *testing.T) {
	_, err := loadTOML(strings.NewReader("[log\nlevel = "))
	if !errors.Is(err, cmd.ErrReadConfig) {
		t.Errorf("loadTOML error = %v, want %v", err, cmd.ErrReadConfig)
	}
}

func TestLoadTOML_Empty(t *testing.T) {
	r := mustLoad(t, "")

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}

	got, err := r.Resolve(nil, nil, flagNamed("log-level"))
	if err != nil || got != nil {
		t.Errorf("Resolve on empty config = (%v, %v), want (nil, nil)", got, err)
	}
}
