// Package log wraps [log/slog] with a small value-typed [Logger].
//
// Loggers are configured once with functional options and never mutated;
// [Logger.Wrap] and [Logger.With] derive new loggers. The zero Logger
// discards everything, so it is safe to embed in structs that may never be
// given one.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("parsed", slog.Int("node_count", 3))
//
// # Levels
//
// In addition to the four [slog] levels, [LevelTrace] sits below
// [LevelDebug] and is rendered as "TRACE".
//
// # Pretty output
//
// With [WithPretty] enabled, records are colorized with lipgloss styles.
// Colors are chosen for the terminal behind the output writer and are
// omitted entirely when it is not a terminal.
//
// # Package-level logging
//
// The functions [Trace], [Debug], [Info], [Warn] and [Error] log through a
// process-wide default logger, replaced by [Config].
package log
