package commands

import (
	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/pkg/errs"
)

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

func forbidden() error {
	return errs.Mark(policy.ErrForbidden, errs.ErrForbidden)
}

// storeErr maps repository error kinds onto the sentinels handlers understand.
// missing is the sentinel for both NOT_FOUND and a dangling foreign key. Callers that know
// which unique key a duplicate hit map it themselves first.
func storeErr(err error, missing error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, missing)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrConflict)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// passThrough keeps errors already mapped inside a transaction callback.
func passThrough(err error, missing error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		errs.ErrForbidden,
		errs.ErrDomainValidation,
		errs.ErrInvalidTransition,
		errs.ErrUserNotFound,
		errs.ErrVenueNotFound,
		errs.ErrReservationNotFound,
		errs.ErrReviewNotFound,
		errs.ErrEmailTaken,
		errs.ErrConflict,
		errs.ErrDatabaseOperationFailed,
	} {
		if errs.Is(err, sentinel) {
			return err
		}
	}
	return storeErr(err, missing)
}
