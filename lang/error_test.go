package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")
	err := ErrEncode.Wrap(cause).With(slog.String("format", "yaml"))

	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrReadInput)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.ErrorIs(t, wrapped, ErrEncode)
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewError("msg"), "msg"},
		{ErrReadInput.Wrap(errors.New("eof")), "failed to read input: eof"},
		{WrapError(errors.New("bare")), "bare"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestWrapError_KeepsError(t *testing.T) {
	orig := ErrQueryCompile.With(slog.Int("n", 1))

	got := WrapError(fmt.Errorf("ctx: %w", orig))
	assert.Same(t, orig, got)
}

func TestError_WithDoesNotAlias(t *testing.T) {
	base := NewError("base").With(slog.Int("a", 1))

	x := base.With(slog.Int("b", 2))
	y := base.With(slog.Int("c", 3))

	require.Len(t, x.attrs, 2)
	require.Len(t, y.attrs, 2)
	assert.Equal(t, "b", x.attrs[1].Key)
	assert.Equal(t, "c", y.attrs[1].Key)
}

func TestError_LogValue(t *testing.T) {
	err := ErrQueryEvaluate.Wrap(errors.New("bad index")).
		With(slog.String("predicate", "p"))

	v := err.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	assert.Equal(t, map[string]string{
		"error":     "query evaluation failed",
		"cause":     "bad index",
		"predicate": "p",
	}, got)
}
