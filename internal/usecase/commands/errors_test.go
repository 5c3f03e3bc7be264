//go:build unit

package commands

import (
	"errors"
	"testing"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStoreErr(t *testing.T) {
	cause := errors.New("pg")

	tests := []struct {
		name string
		err  error
		want error
		not  error
	}{
		{"not found uses the caller's sentinel", infra.WrapRepoErr("x", cause, infra.KindNotFound), errs.ErrVenueNotFound, nil},
		{"dangling reference uses the caller's sentinel", infra.WrapRepoErr("x", cause, infra.KindForeignKeyViolated), errs.ErrVenueNotFound, nil},
		{"duplicate outside users is a plain conflict", infra.WrapRepoErr("x", cause, infra.KindDuplicateKey), errs.ErrConflict, errs.ErrEmailTaken},
		{"anything else is a database failure", infra.WrapRepoErr("x", cause), errs.ErrDatabaseOperationFailed, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeErr(tt.err, errs.ErrVenueNotFound)
			assert.True(t, errs.Is(got, tt.want), "got %v", got)
			if tt.not != nil {
				assert.False(t, errs.Is(got, tt.not))
			}
		})
	}

	assert.NoError(t, storeErr(nil, errs.ErrVenueNotFound))
}

func TestPassThroughKeepsConflict(t *testing.T) {
	err := errs.Mark(errors.New("dup"), errs.ErrConflict)
	assert.Same(t, err, passThrough(err, errs.ErrReviewNotFound))
}
