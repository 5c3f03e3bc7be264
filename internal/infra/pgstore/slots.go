package pgstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const addBookedSlot = `-- name: AddBookedSlot :execrows
INSERT INTO venue_booked_slots (venue_id, slot_at) VALUES ($1, $2)
ON CONFLICT (venue_id, slot_at) DO NOTHING`

func (q *Queries) AddBookedSlot(ctx context.Context, db DBTX, venueID uuid.UUID, at time.Time) (int64, error) {
	tag, err := db.Exec(ctx, addBookedSlot, venueID, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const removeBookedSlot = `-- name: RemoveBookedSlot :execrows
DELETE FROM venue_booked_slots WHERE venue_id = $1 AND slot_at = $2`

func (q *Queries) RemoveBookedSlot(ctx context.Context, db DBTX, venueID uuid.UUID, at time.Time) (int64, error) {
	tag, err := db.Exec(ctx, removeBookedSlot, venueID, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listBookedSlots = `-- name: ListBookedSlots :many
SELECT venue_id, slot_at FROM venue_booked_slots WHERE venue_id = ANY($1::uuid[]) ORDER BY venue_id, slot_at`

func (q *Queries) ListBookedSlots(ctx context.Context, db DBTX, venueIDs []uuid.UUID) ([]BookedSlot, error) {
	rows, err := db.Query(ctx, listBookedSlots, venueIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[BookedSlot])
}

// Re-adds the slot of every active reservation.
const restoreActiveSlots = `-- name: RestoreActiveSlots :execrows
INSERT INTO venue_booked_slots (venue_id, slot_at)
SELECT DISTINCT r.venue_id, r.reservation_date_time
FROM reservations r
WHERE r.status <> 'cancelled'
ON CONFLICT (venue_id, slot_at) DO NOTHING`

func (q *Queries) RestoreActiveSlots(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, restoreActiveSlots)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Drops slots left behind by deleted reservations. A slot with any reservation row at that
// venue and time stays, since creating a reservation books its slot whatever the status.
const pruneOrphanSlots = `-- name: PruneOrphanSlots :execrows
DELETE FROM venue_booked_slots s
WHERE NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.venue_id = s.venue_id
      AND r.reservation_date_time = s.slot_at
)`

func (q *Queries) PruneOrphanSlots(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, pruneOrphanSlots)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
