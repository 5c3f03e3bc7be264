package converter

import (
	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
)

func ReservationToParams(r *reservation.Reservation) pgstore.ReservationParams {
	return pgstore.ReservationParams{
		ID:                  r.ID(),
		UserID:              r.UserID(),
		VenueID:             r.VenueID(),
		ReservationDateTime: r.Slot().Time(),
		Status:              r.Status().String(),
		IsRecurring:         r.IsRecurring(),
		SubscriptionID:      pgconv.UUIDPtrToPgtype(r.SubscriptionID()),
		LastUpdatedByID:     pgconv.UUIDPtrToPgtype(r.LastUpdatedByID()),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row pgstore.Reservation) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.VenueID,
		slot.New(row.ReservationDateTime),
		status,
		row.IsRecurring,
		pgconv.UUIDPtrFromPgtype(row.SubscriptionID),
		pgconv.UUIDPtrFromPgtype(row.LastUpdatedByID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
