package cmd

import (
	"context"
	"path/filepath"

	"github.com/ardnew/genex/cli/cmd/repl"
	"github.com/ardnew/genex/log"
)

// Repl starts the interactive explorer.
type Repl struct {
	View      string `default:"tree" enum:"tree,native,json,yaml" help:"Initial view of parsed input (${enum})."`
	NoHistory bool   `help:"Neither read nor write the history file."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	cfg := repl.Config{
		View:   r.View,
		Logger: log.Default(),
	}

	if dir := kongVar(ctx, CacheIdentifier); dir != "" && !r.NoHistory {
		cfg.HistoryPath = filepath.Join(dir, repl.HistoryFile)
	}

	return repl.Run(ctx, cfg)
}
