package review

import (
	"time"

	"github.com/google/uuid"
)

type Patch struct {
	Rating  *int
	Comment *string
}

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	venueID   uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(userID, venueID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if venueID == uuid.Nil {
		return nil, ErrMissingVenue
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		venueID:   venueID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, userID, venueID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		venueID:   venueID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply returns the patched review; author and venue never change.
func (r *Review) Apply(p Patch, now time.Time) (*Review, error) {
	next := *r
	if p.Rating != nil {
		rating, err := NewRating(*p.Rating)
		if err != nil {
			return nil, err
		}
		next.rating = rating
	}
	if p.Comment != nil {
		comment, err := NewComment(*p.Comment)
		if err != nil {
			return nil, err
		}
		next.comment = comment
	}
	next.updatedAt = now
	return &next, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) VenueID() uuid.UUID   { return r.venueID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
