package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/log"
	"github.com/ardnew/genex/profile"
)

// Init writes the current flag values to the configuration file.
type Init struct {
	Force bool `help:"Overwrite an existing configuration file." short:"f"`
}

// ignoredFlags are never written to the configuration file.
var ignoredFlags = []string{"help", "version", "source", "force", profile.Tag}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)

	confPath := kongVar(ctx, ConfigIdentifier)
	if ktx == nil || confPath == "" {
		panic("internal error: configuration path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}
	defer file.Close()

	enc := toml.NewEncoder(file)
	enc.Indent = ""

	if err := enc.Encode(configDocument(ktx)); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.Default().DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// configDocument returns the set flag values of ktx as TOML tables: flags in
// a group go in a table named after the group, with the group prefix removed
// from the key.
func configDocument(ktx *kong.Context) map[string]any {
	doc := map[string]any{}

	for _, flag := range ktx.Flags() {
		if flag.Hidden || ignored(flag.Name) {
			continue
		}

		val := configValue(ktx.FlagValue(flag))
		if val == nil {
			continue
		}

		if flag.Group == nil || flag.Group.Key == "" {
			doc[flag.Name] = val

			continue
		}

		table, _ := doc[flag.Group.Key].(map[string]any)
		if table == nil {
			table = map[string]any{}
			doc[flag.Group.Key] = table
		}

		table[strings.TrimPrefix(flag.Name, flag.Group.Key+"-")] = val
	}

	return doc
}

func ignored(name string) bool {
	for _, prefix := range ignoredFlags {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

// configValue returns v as a TOML-encodable value, or nil to omit it.
func configValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case bool, int, int64, uint, uint64, float64:
		return v

	default:
		return nil
	}
}
