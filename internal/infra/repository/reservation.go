package repository

import (
	"context"

	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgstore.DBTX, arg pgstore.ReservationParams) (uuid.UUID, error)
	UpdateReservation(ctx context.Context, db pgstore.DBTX, arg pgstore.ReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgstore.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	resultID, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return resultID, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx pgstore.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
