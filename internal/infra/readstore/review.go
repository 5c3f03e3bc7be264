package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReviewView(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.ReviewViewRow, error)
	ListReviewViews(ctx context.Context, db pgstore.DBTX) ([]pgstore.ReviewViewRow, error)
	ListReviewViewsByVenue(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID) ([]pgstore.ReviewViewRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      pgstore.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db pgstore.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

// List returns every review, or only those of venueID when it is set.
func (r *ReviewReadStore) List(ctx context.Context, venueID *uuid.UUID) ([]*queries.ReviewView, error) {
	var (
		rows []pgstore.ReviewViewRow
		err  error
	)
	if venueID != nil {
		rows, err = r.queries.ListReviewViewsByVenue(ctx, r.db, *venueID)
	} else {
		rows, err = r.queries.ListReviewViews(ctx, r.db)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result, nil
}

func toReviewView(row pgstore.ReviewViewRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:        row.ID,
		UserID:    row.UserID,
		VenueID:   row.VenueID,
		Rating:    int(row.Rating),
		Comment:   row.Comment,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		User: queries.ReviewAuthor{
			ID:    row.UserID,
			Name:  row.UserName,
			Email: row.UserEmail,
		},
	}
}
