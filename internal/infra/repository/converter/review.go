package converter

import (
	"halisaha-api/internal/domain/review"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) pgstore.CreateReviewParams {
	return pgstore.CreateReviewParams{
		ID:        r.ID(),
		UserID:    r.UserID(),
		VenueID:   r.VenueID(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- 1..5
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) pgstore.UpdateReviewParams {
	return pgstore.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- 1..5
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row pgstore.Review) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(
		row.ID,
		row.UserID,
		row.VenueID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
