package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/genex/lang"
	"github.com/ardnew/genex/log"
)

type contextKey struct{}

// WithContext returns ctx carrying ktx.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

// kongVar returns the kong variable name, or "" if unavailable.
func kongVar(ctx context.Context, name string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[name]
}

type outputKey struct{}

// WithOutput returns ctx carrying the writer commands print to.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// stdin is read for the source "-".
var stdin io.Reader = os.Stdin

// stdinSource is the source name of standard input.
const stdinSource = "-"

// Sources is a deduplicated list of input files.
type Sources struct {
	// Paths are the resolved regular files, in first-seen order.
	Paths []string
	// Stdin reports whether standard input was named, either as "-" or by
	// a path to the same file. It is read after Paths.
	Stdin bool
}

type sourcesKey struct{}

// WithSources returns ctx carrying the resolved form of paths.
// Paths that cannot be resolved are logged and skipped.
func WithSources(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, resolveSources(ctx, paths))
}

func sourcesFrom(ctx context.Context) *Sources {
	s, _ := ctx.Value(sourcesKey{}).(*Sources)

	return s
}

func resolveSources(ctx context.Context, paths []string) *Sources {
	var (
		s    Sources
		seen []os.FileInfo
	)

	stdinInfo, _ := os.Stdin.Stat()

	for _, path := range paths {
		if path == stdinSource {
			s.Stdin = true

			continue
		}

		resolved, info, err := resolvePath(path)
		if err != nil {
			log.Default().WarnContext(ctx, "skipping source",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)

			continue
		}

		if stdinInfo != nil && os.SameFile(info, stdinInfo) {
			s.Stdin = true

			continue
		}

		dup := false
		for _, prev := range seen {
			if os.SameFile(info, prev) {
				dup = true

				break
			}
		}

		if dup {
			continue
		}

		seen = append(seen, info)
		s.Paths = append(s.Paths, resolved)
	}

	return &s
}

func resolvePath(path string) (string, os.FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", nil, err
	}

	return resolved, info, nil
}

// IsZero reports whether s names no input.
func (s *Sources) IsZero() bool {
	return s == nil || (len(s.Paths) == 0 && !s.Stdin)
}

// Open returns a reader over all sources in order. Closing it closes every
// opened file.
func (s *Sources) Open() (io.ReadCloser, error) {
	var (
		readers []io.Reader
		files   multiCloser
	)

	for _, path := range s.Paths {
		f, err := os.Open(path)
		if err != nil {
			_ = files.Close()

			return nil, ErrOpenSource.Wrap(err).With(slog.String("path", path))
		}

		files = append(files, f)
		readers = append(readers, f)
	}

	if s.Stdin {
		readers = append(readers, stdin)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.MultiReader(readers...), files}, nil
}

// Lines returns the non-empty lines of all sources.
func (s *Sources) Lines() ([]string, error) {
	r, err := s.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<24)

	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, lang.ErrReadInput.Wrap(err)
	}

	return lines, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

// openSource opens a single named source; "-" is standard input.
func openSource(name string) (io.ReadCloser, error) {
	if name == "" || name == stdinSource {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("path", name))
	}

	return f, nil
}

// readTree parses the named source through the tree cache.
func readTree(ctx context.Context, name string) (*lang.Tree, error) {
	r, err := openSource(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return lang.ParseReader(ctx, r, lang.WithLogger(log.Default()))
}
