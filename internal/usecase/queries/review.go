package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"halisaha-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context, venueID *uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	List(ctx context.Context, venueID *uuid.UUID) ([]*ReviewView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) List(ctx context.Context, venueID *uuid.UUID) ([]*ReviewView, error) {
	views, err := q.readStore.List(ctx, venueID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrReviewNotFound)
	}
	return v, nil
}
