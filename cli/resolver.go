package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/cli/cmd"
)

// loadTOML is a [kong.ConfigurationLoader] for TOML configuration files.
//
// Tables are flattened into flag names by joining keys with hyphens, so the
// following are equivalent ways of setting --log-level:
//
//	log-level = "debug"
//
//	[log]
//	level = "debug"
//
// Keys may use underscores in place of hyphens. A flag of a command may also
// be set in a table named after the command:
//
//	[parse]
//	color = "never"
//
// Command-line flags override configuration file values.
func loadTOML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, cmd.ErrReadConfig.Wrap(err)
	}

	conf := config{}
	conf.flatten("", doc)

	return conf, nil
}

// config implements [kong.Resolver] over flattened TOML keys.
type config map[string]any

func (c config) flatten(prefix string, table map[string]any) {
	for key, value := range table {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = flagValue(value)
	}
}

// flagValue converts a decoded TOML value into a form kong can scan.
// Kong parses numbers from strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			if s, ok := flagValue(e).(string); ok {
				out[i] = s
			} else {
				out[i] = fmt.Sprint(e)
			}
		}

		return out

	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. A nil value leaves the flag at its
// default.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	names := []string{flag.Name}

	if parent != nil && parent.Command != nil {
		names = append([]string{parent.Command.Name + "-" + flag.Name}, names...)
	}

	for _, name := range names {
		if value, ok := c[strings.ReplaceAll(name, "_", "-")]; ok {
			return value, nil
		}
	}

	return nil, nil
}
