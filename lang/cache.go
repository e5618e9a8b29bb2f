package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache maps a source hash to its *entry.
var globalCache sync.Map

// entry holds the single parse of one distinct source.
type entry struct {
	once   sync.Once
	source string
	tree   *Tree
	err    error
}

// ParseReader reads all of r and parses it.
//
// Unless disabled with [WithCache], trees are cached by source content so
// identical input is parsed once even when read from many goroutines. Every
// caller receives its own deep copy of the cached tree.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Tree, error) {
	// Read ahead asynchronously while earlier chunks are consumed.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	probe := newTree("", opts...)

	probe.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	if probe.opts.noCache {
		return ParseString(ctx, string(data), opts...)
	}

	return parseStringCached(ctx, string(data), opts...)
}

// parseStringCached parses source at most once per distinct content.
func parseStringCached(
	ctx context.Context,
	source string,
	opts ...Option,
) (*Tree, error) {
	hash := xxh3.HashString128(source)
	key := strconv.FormatUint(hash.Hi, 36) + strconv.FormatUint(hash.Lo, 36)

	value, hit := globalCache.LoadOrStore(key, new(entry))

	ent, _ := value.(*entry)

	probe := newTree("", opts...)
	probe.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", key),
		slog.Bool("cache_hit", hit),
	)

	ent.once.Do(func() {
		ent.source = source
		ent.tree, ent.err = ParseString(ctx, source, opts...)
	})

	if ent.err != nil {
		return nil, ent.err
	}

	// A 128-bit collision is not expected, but never hand out a tree for
	// different content.
	if ent.source != source {
		return ParseString(ctx, source, opts...)
	}

	out := ent.tree.Clone()
	out.logger = probe.logger

	return out, nil
}

// ClearCache removes all cached trees.
func ClearCache() {
	globalCache.Clear()
}
