package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateReviewParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Rating    int16
	Comment   string
	CreatedAt pgtype.Timestamptz
}

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (id, user_id, venue_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id`

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReview,
		arg.ID,
		arg.UserID,
		arg.VenueID,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type UpdateReviewParams struct {
	ID        uuid.UUID
	Rating    int16
	Comment   string
	UpdatedAt pgtype.Timestamptz
}

const updateReview = `-- name: UpdateReview :execrows
UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const reviewViewSelect = `SELECT rv.id, rv.user_id, rv.venue_id, rv.rating, rv.comment, rv.created_at, rv.updated_at,
       u.name, u.email
FROM reviews rv
JOIN users u ON u.id = rv.user_id`

const getReviewView = `-- name: GetReviewView :one
` + reviewViewSelect + `
WHERE rv.id = $1`

func (q *Queries) GetReviewView(ctx context.Context, db DBTX, id uuid.UUID) (ReviewViewRow, error) {
	return scanReviewView(db.QueryRow(ctx, getReviewView, id))
}

const listReviewViews = `-- name: ListReviewViews :many
` + reviewViewSelect + `
ORDER BY rv.created_at DESC, rv.id`

func (q *Queries) ListReviewViews(ctx context.Context, db DBTX) ([]ReviewViewRow, error) {
	return collectReviewViews(db.Query(ctx, listReviewViews))
}

const listReviewViewsByVenue = `-- name: ListReviewViewsByVenue :many
` + reviewViewSelect + `
WHERE rv.venue_id = $1
ORDER BY rv.created_at DESC, rv.id`

func (q *Queries) ListReviewViewsByVenue(ctx context.Context, db DBTX, venueID uuid.UUID) ([]ReviewViewRow, error) {
	return collectReviewViews(db.Query(ctx, listReviewViewsByVenue, venueID))
}

func collectReviewViews(rows pgx.Rows, err error) ([]ReviewViewRow, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ReviewViewRow, error) {
		return scanReviewView(r)
	})
}

func scanReviewView(row pgx.Row) (ReviewViewRow, error) {
	var i ReviewViewRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VenueID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UserName,
		&i.UserEmail,
	)
	return i, err
}
