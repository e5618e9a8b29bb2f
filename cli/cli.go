package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/cli/cmd"
	"github.com/ardnew/genex/pkg"
)

// ConfigFile is the base name of the configuration file.
const ConfigFile = "config.toml"

// CLI is the top-level command-line interface for genex.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Source []string `help:"Input file(s) of newline-separated strings, or '-' for stdin." name:"source" short:"s" type:"path"`

	Parse   cmd.Parse   `cmd:"" default:"withargs" help:"Print the tree of each string."`
	Fmt     cmd.Fmt     `cmd:""                    help:"Re-emit a parsed string in another format."`
	Query   cmd.Query   `cmd:""                    help:"Select expressions with a predicate."`
	Repl    cmd.Repl    `cmd:""                    help:"Explore strings interactively."`
	Grammar cmd.Grammar `cmd:""                    help:"Print the EBNF grammar."`
	Init    cmd.Init    `cmd:""                    help:"Write the current options to the configuration file."`
}

// Run executes the genex CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := pkg.MkdirAll(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags take effect before kong reports any parse error.
	cli.Log.scan(args)

	// Commands receive ctx as it is when they run, after the values below
	// are added to it.
	parser, err := newParser(
		func() context.Context { return ctx },
		&cli,
		pkg.ConfigPath(ConfigFile),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOutput(ctx, parser.Stdout)

	defer cli.Log.start(ctx)()

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithSources(ctx, cli.Source)

	return ktx.Run(ctx, &cli)
}

// newParser returns the kong parser for cli, reading defaults from the
// configuration file at configPath. Commands are bound to the context
// returned by ctx.
func newParser(
	ctx func() context.Context,
	cli *CLI,
	configPath string,
	opts ...kong.Option,
) (*kong.Kong, error) {
	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            pkg.Name + " " + pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	opts = append([]kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(ctx),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(loadTOML, configPath),
		vars,
	}, opts...)

	return kong.New(cli, opts...)
}
