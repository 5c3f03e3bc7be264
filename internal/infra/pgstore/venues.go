package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const venueColumns = `id, owner_id, name, slug, location, latitude, longitude, phone, description,
       price_per_hour, start_hour, end_hour, size, surface, max_players,
       has_parking, has_showers, has_shoe_rental, has_cafeteria, has_night_lighting,
       images_url, rating, review_count, created_at, updated_at`

type VenueParams struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	Slug             string
	Location         string
	Latitude         float64
	Longitude        float64
	Phone            string
	Description      string
	PricePerHour     float64
	StartHour        string
	EndHour          string
	Size             string
	Surface          string
	MaxPlayers       int32
	HasParking       bool
	HasShowers       bool
	HasShoeRental    bool
	HasCafeteria     bool
	HasNightLighting bool
	ImagesUrl        []string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

const createVenue = `-- name: CreateVenue :one
INSERT INTO venues (
    id, owner_id, name, slug, location, latitude, longitude, phone, description,
    price_per_hour, start_hour, end_hour, size, surface, max_players,
    has_parking, has_showers, has_shoe_rental, has_cafeteria, has_night_lighting,
    images_url, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9,
    $10, $11, $12, $13, $14, $15,
    $16, $17, $18, $19, $20,
    $21, $22, $23
)
RETURNING id`

func (q *Queries) CreateVenue(ctx context.Context, db DBTX, arg VenueParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createVenue,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Slug,
		arg.Location,
		arg.Latitude,
		arg.Longitude,
		arg.Phone,
		arg.Description,
		arg.PricePerHour,
		arg.StartHour,
		arg.EndHour,
		arg.Size,
		arg.Surface,
		arg.MaxPlayers,
		arg.HasParking,
		arg.HasShowers,
		arg.HasShoeRental,
		arg.HasCafeteria,
		arg.HasNightLighting,
		arg.ImagesUrl,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

// rating and review_count are owned by the aggregator and never written here.
const updateVenue = `-- name: UpdateVenue :execrows
UPDATE venues SET
    name = $2, slug = $3, location = $4, latitude = $5, longitude = $6, phone = $7,
    description = $8, price_per_hour = $9, start_hour = $10, end_hour = $11,
    size = $12, surface = $13, max_players = $14,
    has_parking = $15, has_showers = $16, has_shoe_rental = $17,
    has_cafeteria = $18, has_night_lighting = $19, images_url = $20,
    updated_at = $21
WHERE id = $1`

func (q *Queries) UpdateVenue(ctx context.Context, db DBTX, arg VenueParams) (int64, error) {
	tag, err := db.Exec(ctx, updateVenue,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Location,
		arg.Latitude,
		arg.Longitude,
		arg.Phone,
		arg.Description,
		arg.PricePerHour,
		arg.StartHour,
		arg.EndHour,
		arg.Size,
		arg.Surface,
		arg.MaxPlayers,
		arg.HasParking,
		arg.HasShowers,
		arg.HasShoeRental,
		arg.HasCafeteria,
		arg.HasNightLighting,
		arg.ImagesUrl,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteVenue = `-- name: DeleteVenue :execrows
DELETE FROM venues WHERE id = $1`

func (q *Queries) DeleteVenue(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteVenue, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findVenueByID = `-- name: FindVenueByID :one
SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

func (q *Queries) FindVenueByID(ctx context.Context, db DBTX, id uuid.UUID) (Venue, error) {
	return scanVenue(db.QueryRow(ctx, findVenueByID, id))
}

const listVenues = `-- name: ListVenues :many
SELECT ` + venueColumns + ` FROM venues ORDER BY created_at DESC, id`

func (q *Queries) ListVenues(ctx context.Context, db DBTX) ([]Venue, error) {
	rows, err := db.Query(ctx, listVenues)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Venue, error) {
		return scanVenue(r)
	})
}

const listVenueIDs = `-- name: ListVenueIDs :many
SELECT id FROM venues ORDER BY id`

func (q *Queries) ListVenueIDs(ctx context.Context, db DBTX) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listVenueIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const lockVenue = `-- name: LockVenue :one
SELECT id FROM venues WHERE id = $1 FOR UPDATE`

func (q *Queries) LockVenue(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var locked uuid.UUID
	err := db.QueryRow(ctx, lockVenue, id).Scan(&locked)
	return locked, err
}

const aggregateVenueReviews = `-- name: AggregateVenueReviews :one
SELECT count(*)::bigint, coalesce(sum(rating), 0)::bigint FROM reviews WHERE venue_id = $1`

func (q *Queries) AggregateVenueReviews(ctx context.Context, db DBTX, venueID uuid.UUID) (ReviewAggregate, error) {
	var i ReviewAggregate
	err := db.QueryRow(ctx, aggregateVenueReviews, venueID).Scan(&i.Count, &i.Sum)
	return i, err
}

const updateVenueRating = `-- name: UpdateVenueRating :execrows
UPDATE venues SET rating = $2, review_count = $3 WHERE id = $1`

type UpdateVenueRatingParams struct {
	ID          uuid.UUID
	Rating      float64
	ReviewCount int32
}

func (q *Queries) UpdateVenueRating(ctx context.Context, db DBTX, arg UpdateVenueRatingParams) (int64, error) {
	tag, err := db.Exec(ctx, updateVenueRating, arg.ID, arg.Rating, arg.ReviewCount)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const venueRatingDistribution = `-- name: VenueRatingDistribution :many
SELECT rating, count(*)::bigint FROM reviews WHERE venue_id = $1 GROUP BY rating ORDER BY rating`

func (q *Queries) VenueRatingDistribution(ctx context.Context, db DBTX, venueID uuid.UUID) ([]RatingBucket, error) {
	rows, err := db.Query(ctx, venueRatingDistribution, venueID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (RatingBucket, error) {
		var b RatingBucket
		err := r.Scan(&b.Rating, &b.Count)
		return b, err
	})
}

func scanVenue(row pgx.Row) (Venue, error) {
	var i Venue
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Slug,
		&i.Location,
		&i.Latitude,
		&i.Longitude,
		&i.Phone,
		&i.Description,
		&i.PricePerHour,
		&i.StartHour,
		&i.EndHour,
		&i.Size,
		&i.Surface,
		&i.MaxPlayers,
		&i.HasParking,
		&i.HasShowers,
		&i.HasShoeRental,
		&i.HasCafeteria,
		&i.HasNightLighting,
		&i.ImagesUrl,
		&i.Rating,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
