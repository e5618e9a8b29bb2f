// Package profile starts runtime profiling with [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	genex --pprof-mode cpu parse '$<CONFIG:Debug>'
//
// Without the tag, [Modes] is empty and [Profiler.Start] does nothing.
//
// Profiles are written to [Profiler.Path] named after their mode, such as
// cpu.pprof or mem.pprof, and are read with "go tool pprof".
package profile

// Tag is the build tag that enables profiling. It also names the default
// profile directory under the cache directory.
const Tag = `pprof`
