package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/genex/lang"
)

// Fmt re-encodes a source in one of several formats.
type Fmt struct {
	Native  Native  `cmd:"" default:"withargs" help:"Rebuild the source from its tree (default)."`
	JSON    JSON    `cmd:""                    help:"Encode the tree as JSON."`
	YAML    YAML    `cmd:""                    help:"Encode the tree as YAML."`
	Msgpack Msgpack `cmd:""                    help:"Encode the tree as MessagePack."`
}

// Native writes the source as rebuilt from its tree.
type Native struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// Run executes the native formatter.
func (n *Native) Run(ctx context.Context) error {
	tree, err := readTree(ctx, n.Source)
	if err != nil {
		return err
	}

	return tree.Format(ctx, output(ctx))
}

// JSON writes the tree as JSON.
type JSON struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`

	Indent int `default:"2" help:"Indent width; 0 writes compact JSON." short:"i"`
}

// Run executes the JSON formatter.
func (j *JSON) Run(ctx context.Context) error {
	tree, err := readTree(ctx, j.Source)
	if err != nil {
		return err
	}

	if err := tree.FormatJSON(ctx, output(ctx), j.Indent); err != nil {
		return lang.WrapError(err).With(slog.String("source", j.Source))
	}

	return nil
}

// YAML writes the tree as YAML.
type YAML struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`

	Indent int `default:"2" help:"Indent width; 0 writes flow style." short:"i"`
}

// Run executes the YAML formatter.
func (y *YAML) Run(ctx context.Context) error {
	tree, err := readTree(ctx, y.Source)
	if err != nil {
		return err
	}

	if err := tree.FormatYAML(ctx, output(ctx), y.Indent); err != nil {
		return lang.WrapError(err).With(slog.String("source", y.Source))
	}

	return nil
}

// Msgpack writes the tree as MessagePack.
type Msgpack struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// Run executes the MessagePack formatter.
func (m *Msgpack) Run(ctx context.Context) error {
	tree, err := readTree(ctx, m.Source)
	if err != nil {
		return err
	}

	if err := tree.FormatMsgpack(ctx, output(ctx)); err != nil {
		return lang.WrapError(err).With(slog.String("source", m.Source))
	}

	return nil
}
