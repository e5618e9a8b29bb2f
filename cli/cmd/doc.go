// Package cmd implements the genex subcommands.
//
// Commands receive a [context.Context] carrying the parsed [kong.Context]
// ([WithContext]), the --source inputs ([WithSources]) and the output
// writer ([WithOutput]).
package cmd

var (
	// CacheIdentifier is the kong variable holding the runtime cache
	// directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the configuration file
	// path.
	ConfigIdentifier = "config"
)
