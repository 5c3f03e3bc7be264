package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"log/slog"
	"math"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	List(ctx context.Context) ([]*VenueView, error)
	RatingDistribution(ctx context.Context, venueID uuid.UUID) ([5]int, error)
}

type VenueListCache interface {
	GetVenueList(ctx context.Context) ([]*VenueView, bool, error)
	SetVenueList(ctx context.Context, views []*VenueView) error
}

type VenueQueries interface {
	List(ctx context.Context) ([]*VenueView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	RatingStats(ctx context.Context, id uuid.UUID) (*RatingStats, error)
}

type venueQueriesImpl struct {
	readStore VenueReadStore
	cache     VenueListCache
	logger    *slog.Logger
}

func NewVenueQueries(readStore VenueReadStore, cache VenueListCache, logger *slog.Logger) VenueQueries {
	return &venueQueriesImpl{readStore: readStore, cache: cache, logger: logger}
}

// List reads through the cache. Cache errors degrade to a store read.
func (q *venueQueriesImpl) List(ctx context.Context) ([]*VenueView, error) {
	cached, ok, err := q.cache.GetVenueList(ctx)
	if err != nil {
		q.logger.Warn("venue list cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		return cached, nil
	}

	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := q.cache.SetVenueList(ctx, views); err != nil {
		q.logger.Warn("venue list cache write failed", slog.String("error", err.Error()))
	}
	return views, nil
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrVenueNotFound)
	}
	return v, nil
}

// RatingStats is computed from the reviews themselves, not the stored venue rating.
func (q *venueQueriesImpl) RatingStats(ctx context.Context, id uuid.UUID) (*RatingStats, error) {
	if _, err := q.GetByID(ctx, id); err != nil {
		return nil, err
	}
	dist, err := q.readStore.RatingDistribution(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	stats := &RatingStats{VenueID: id, Distribution: dist}
	var sum int
	for i, n := range dist {
		stats.ReviewCount += n
		sum += (i + 1) * n
	}
	if stats.ReviewCount > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.ReviewCount)*10) / 10
	}
	return stats, nil
}

func readErr(err error, missing error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, missing)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
