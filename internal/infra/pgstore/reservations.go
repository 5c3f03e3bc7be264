package pgstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationParams struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	VenueID             uuid.UUID
	ReservationDateTime time.Time
	Status              string
	IsRecurring         bool
	SubscriptionID      pgtype.UUID
	LastUpdatedByID     pgtype.UUID
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    id, user_id, venue_id, reservation_date_time, status, is_recurring,
    subscription_id, last_updated_by_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg ReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.VenueID,
		arg.ReservationDateTime,
		arg.Status,
		arg.IsRecurring,
		arg.SubscriptionID,
		arg.LastUpdatedByID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations SET
    reservation_date_time = $2,
    status = $3,
    is_recurring = $4,
    subscription_id = $5,
    last_updated_by_id = $6,
    updated_at = $7
WHERE id = $1`

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg ReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.ReservationDateTime,
		arg.Status,
		arg.IsRecurring,
		arg.SubscriptionID,
		arg.LastUpdatedByID,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const reservationViewSelect = `SELECT r.id, r.user_id, r.venue_id, r.reservation_date_time, r.status, r.is_recurring,
       r.subscription_id, r.last_updated_by_id, r.created_at, r.updated_at,
       v.name, v.location, v.owner_id, v.price_per_hour
FROM reservations r
JOIN venues v ON v.id = r.venue_id`

const getReservationView = `-- name: GetReservationView :one
` + reservationViewSelect + `
WHERE r.id = $1`

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id uuid.UUID) (ReservationViewRow, error) {
	return scanReservationView(db.QueryRow(ctx, getReservationView, id))
}

const listReservationViews = `-- name: ListReservationViews :many
` + reservationViewSelect + `
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListReservationViews(ctx context.Context, db DBTX) ([]ReservationViewRow, error) {
	return collectReservationViews(db.Query(ctx, listReservationViews))
}

const listReservationViewsByUser = `-- name: ListReservationViewsByUser :many
` + reservationViewSelect + `
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListReservationViewsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ReservationViewRow, error) {
	return collectReservationViews(db.Query(ctx, listReservationViewsByUser, userID))
}

// Reservations at the owner's venues plus the ones they booked elsewhere.
const listReservationViewsForOwner = `-- name: ListReservationViewsForOwner :many
` + reservationViewSelect + `
WHERE v.owner_id = $1 OR r.user_id = $1
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListReservationViewsForOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]ReservationViewRow, error) {
	return collectReservationViews(db.Query(ctx, listReservationViewsForOwner, ownerID))
}

func collectReservationViews(rows pgx.Rows, err error) ([]ReservationViewRow, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ReservationViewRow, error) {
		return scanReservationView(r)
	})
}

func scanReservationView(row pgx.Row) (ReservationViewRow, error) {
	var i ReservationViewRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VenueID,
		&i.ReservationDateTime,
		&i.Status,
		&i.IsRecurring,
		&i.SubscriptionID,
		&i.LastUpdatedByID,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.VenueName,
		&i.VenueLocation,
		&i.VenueOwnerID,
		&i.VenuePricePerHour,
	)
	return i, err
}
