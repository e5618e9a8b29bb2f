// Package cli contains the command line interface for genex.
//
// # Usage
//
// Strings given as arguments are parsed and printed as trees:
//
//	genex '$<$<CONFIG:Debug>:-g>'
//	genex --source exprs.txt parse
//
// Other commands re-emit input in another format, select expressions with an
// expr-lang predicate, or start an interactive explorer:
//
//	genex fmt json '$<IF:$<BOOL:1>,a,b>'
//	genex query 'identifier == "CONFIG"' '$<CONFIG:Debug> $<CONFIG:Release>'
//	genex repl
//
// # Configuration
//
// Defaults for any flag are read from config.toml in the user configuration
// directory ([loadTOML]). "genex init" writes the current flags to that file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o genex .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
