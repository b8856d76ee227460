//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"padel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("marked error matches both the sentinel and the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		marked := errs.Mark(cause, errSentinel)

		assert.True(t, errs.Is(marked, errSentinel))
		assert.True(t, errs.Is(marked, cause))
		assert.Contains(t, marked.Error(), "connection reset")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "loading booking %s", "PB-1")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, errSentinel)
	assert.Equal(t, "loading booking PB-1: sentinel", wrapped.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.Wrap(errSentinel, "outer"), 2)
	assert.Len(t, lines, 2)
}
