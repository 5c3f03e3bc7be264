package readstore

import (
	"context"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.ReservationViewRow, error)
	ListReservationViews(ctx context.Context, db pgstore.DBTX) ([]pgstore.ReservationViewRow, error)
	ListReservationViewsByUser(ctx context.Context, db pgstore.DBTX, userID uuid.UUID) ([]pgstore.ReservationViewRow, error)
	ListReservationViewsForOwner(ctx context.Context, db pgstore.DBTX, ownerID uuid.UUID) ([]pgstore.ReservationViewRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgstore.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgstore.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsForOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for owner", err)
	}
	return toReservationViews(rows), nil
}

func toReservationViews(rows []pgstore.ReservationViewRow) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result
}

func toReservationView(row pgstore.ReservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  row.ID,
		UserID:              row.UserID,
		VenueID:             row.VenueID,
		ReservationDateTime: slot.New(row.ReservationDateTime).Time(),
		Status:              row.Status,
		IsRecurring:         row.IsRecurring,
		SubscriptionID:      pgconv.UUIDPtrFromPgtype(row.SubscriptionID),
		LastUpdatedByID:     pgconv.UUIDPtrFromPgtype(row.LastUpdatedByID),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
		Venue: queries.VenueSummary{
			ID:           row.VenueID,
			OwnerID:      row.VenueOwnerID,
			Name:         row.VenueName,
			Location:     row.VenueLocation,
			PricePerHour: row.VenuePricePerHour,
		},
	}
}
