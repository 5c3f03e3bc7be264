package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	LockVenue(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (uuid.UUID, error)
	AggregateVenueReviews(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID) (pgstore.ReviewAggregate, error)
	UpdateVenueRating(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateVenueRatingParams) (int64, error)
}

type RatingStatsRepository struct {
	q RatingStatsQueries
}

func NewRatingStatsRepository(q RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{q: q}
}

// LockVenue holds the venue row until the transaction ends so recomputes of one venue run one at a time.
func (r *RatingStatsRepository) LockVenue(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID) error {
	if _, err := r.q.LockVenue(ctx, tx, venueID); err != nil {
		return infra.WrapRepoErr("failed to lock venue", err)
	}
	return nil
}

func (r *RatingStatsRepository) Aggregate(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID) (int64, int64, error) {
	agg, err := r.q.AggregateVenueReviews(ctx, tx, venueID)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to aggregate reviews", err)
	}
	return agg.Count, agg.Sum, nil
}

func (r *RatingStatsRepository) Update(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, rating float64, count int) error {
	n, err := r.q.UpdateVenueRating(ctx, tx, pgstore.UpdateVenueRatingParams{
		ID:          venueID,
		Rating:      rating,
		ReviewCount: int32(count), // #nosec G115 -- review counts stay far below int32
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update venue rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
