package request

import (
	domreview "halisaha-api/internal/domain/review"
	"halisaha-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	// admins may post on behalf of another user
	UserID  *uuid.UUID `json:"userId"`
	VenueID uuid.UUID  `json:"haliSahaId" binding:"required"`
	Rating  int        `json:"rating" binding:"required,min=1,max=5"`
	Comment string     `json:"comment" binding:"required,min=1,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		UserID:  r.UserID,
		VenueID: r.VenueID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,min=1,max=1000"`
}

func (r *UpdateReviewRequest) ToPatch() domreview.Patch {
	return domreview.Patch{Rating: r.Rating, Comment: r.Comment}
}
