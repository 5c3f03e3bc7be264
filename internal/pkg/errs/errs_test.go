//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"halisaha-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("rating must be between 1 and 5")
		err := errs.Mark(cause, errs.ErrDomainValidation)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, cause))
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nil cause returns the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrForbidden)
		assert.Same(t, errs.ErrForbidden, err)
	})

	t.Run("wrap keeps the mark reachable", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("boom"), errs.ErrVenueNotFound), "load venue")
		assert.True(t, errs.Is(err, errs.ErrVenueNotFound))
		assert.Contains(t, err.Error(), "load venue")
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.New("stack")
	lines := errs.ExtractStackLines(err, 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
