package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"

	"github.com/google/uuid"
)

type SlotQueries interface {
	AddBookedSlot(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID, at time.Time) (int64, error)
	RemoveBookedSlot(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID, at time.Time) (int64, error)
	RestoreActiveSlots(ctx context.Context, db pgstore.DBTX) (int64, error)
	PruneOrphanSlots(ctx context.Context, db pgstore.DBTX) (int64, error)
}

type SlotRepository struct {
	queries SlotQueries
}

func NewSlotRepository(queries SlotQueries) *SlotRepository {
	return &SlotRepository{queries: queries}
}

func (r *SlotRepository) Add(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, s slot.Slot) (bool, error) {
	n, err := r.queries.AddBookedSlot(ctx, tx, venueID, s.Time())
	if err != nil {
		return false, infra.WrapRepoErr("failed to add booked slot", err)
	}
	return n > 0, nil
}

func (r *SlotRepository) Remove(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, s slot.Slot) (bool, error) {
	n, err := r.queries.RemoveBookedSlot(ctx, tx, venueID, s.Time())
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove booked slot", err)
	}
	return n > 0, nil
}

func (r *SlotRepository) RestoreActive(ctx context.Context, tx pgstore.DBTX) (int64, error) {
	n, err := r.queries.RestoreActiveSlots(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to restore active slots", err)
	}
	return n, nil
}

func (r *SlotRepository) PruneOrphans(ctx context.Context, tx pgstore.DBTX) (int64, error) {
	n, err := r.queries.PruneOrphanSlots(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune orphan slots", err)
	}
	return n, nil
}
