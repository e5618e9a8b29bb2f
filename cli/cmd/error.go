package cmd

import "github.com/ardnew/genex/lang"

// Command errors (sentinel values). They share [lang.Error] so callers can
// decorate them with [lang.Error.With] and match them with errors.Is.
var (
	ErrWriteConfig = lang.NewError("write configuration file")
	ErrReadConfig  = lang.NewError("read configuration file")
	ErrFileExists  = lang.NewError("file exists (use --force to overwrite)")
	ErrNoSource    = lang.NewError("no input (pass strings or --source)")
	ErrOpenSource  = lang.NewError("open source")
	ErrGrammar     = lang.NewError("invalid grammar")
)
