package venuestate

import (
	"context"
	"log/slog"
	"math"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingAggregator struct {
	uow         shared.UnitOfWork
	publisher   TaskPublisher
	invalidator shared.VenueListInvalidator
	logger      *slog.Logger
}

func NewRatingAggregator(uow shared.UnitOfWork, publisher TaskPublisher, invalidator shared.VenueListInvalidator, logger *slog.Logger) *RatingAggregator {
	return &RatingAggregator{
		uow:         uow,
		publisher:   publisher,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ComputeRating is the mean rounded to one decimal, or 0 without reviews.
func ComputeRating(count, sum int64) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

// Recompute rewrites the venue's rating and review count from its current reviews.
// Failures are logged and queued, never returned.
func (a *RatingAggregator) Recompute(ctx context.Context, venueID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), effectTimeout)
	defer cancel()

	if err := a.Apply(ctx, venueID); err != nil {
		a.logger.Error("rating recompute failed",
			slog.String("venue_id", venueID.String()),
			slog.String("error", err.Error()))
		enqueue(ctx, a.publisher, a.logger, Task{Kind: TaskRatingRecompute, VenueID: venueID}, err)
	}
}

// Apply is the error-returning form of Recompute. The venue row stays locked for the duration,
// so concurrent recomputes of one venue serialize.
func (a *RatingAggregator) Apply(ctx context.Context, venueID uuid.UUID) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stats := tx.RatingStats()
		if err := stats.LockVenue(ctx, tx.DB(), venueID); err != nil {
			return err
		}
		count, sum, err := stats.Aggregate(ctx, tx.DB(), venueID)
		if err != nil {
			return err
		}
		return stats.Update(ctx, tx.DB(), venueID, ComputeRating(count, sum), int(count))
	})
	if infra.IsKind(err, infra.KindNotFound) {
		a.logger.Warn("skipping rating recompute for missing venue", slog.String("venue_id", venueID.String()))
		return nil
	}
	if err != nil {
		return err
	}

	invalidate(ctx, a.invalidator, a.logger)
	return nil
}
