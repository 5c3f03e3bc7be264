//go:build unit || e2e

package builder

import (
	"time"

	domreview "halisaha-api/internal/domain/review"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string
	UserEmail string
	VenueID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &ReviewBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Yorumcu",
		UserEmail: "reviewer@example.com",
		VenueID:   uuid.New(),
		Rating:    5,
		Comment:   "Zemin harika, soyunma odaları temiz.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() *domreview.Review {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		panic(err)
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		panic(err)
	}
	return domreview.ReconstructReview(r.ID, r.UserID, r.VenueID, rating, comment, r.CreatedAt, r.UpdatedAt)
}

func (r *ReviewBuilder) BuildRow() pgstore.Review {
	return pgstore.Review{
		ID:        r.ID,
		UserID:    r.UserID,
		VenueID:   r.VenueID,
		Rating:    int16(r.Rating), // #nosec G115
		Comment:   r.Comment,
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

func (r *ReviewBuilder) BuildViewRow() pgstore.ReviewViewRow {
	return pgstore.ReviewViewRow{
		Review:    r.BuildRow(),
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		VenueID:   r.VenueID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		User: queries.ReviewAuthor{
			ID:    r.UserID,
			Name:  r.UserName,
			Email: r.UserEmail,
		},
	}
}

func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithUserID(id uuid.UUID) *ReviewBuilder {
	r.UserID = id
	return r
}

func (r *ReviewBuilder) WithVenueID(id uuid.UUID) *ReviewBuilder {
	r.VenueID = id
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Zemin kötü, ışıklar yetersiz."
	return r
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		VenueID: r.VenueID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
