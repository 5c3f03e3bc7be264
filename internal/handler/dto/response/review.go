package response

import (
	"time"

	"halisaha-api/internal/usecase/queries"
)

type ReviewAuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReviewResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	VenueID   string               `json:"haliSahaId"`
	Rating    int                  `json:"rating"`
	Comment   string               `json:"comment"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	User      ReviewAuthorResponse `json:"user"`
}

type CreatedReviewResponse struct {
	ID string `json:"id"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	out := &ReviewResponse{}
	mustCopy(out, v)
	return out
}

func FromReviewViews(vs []*queries.ReviewView) []*ReviewResponse {
	out := make([]*ReviewResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReviewView(v)
	}
	return out
}
