package response

import (
	"time"

	"halisaha-api/internal/usecase/queries"
)

type VenueSummaryResponse struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"pricePerHour"`
}

type ReservationResponse struct {
	ID                  string               `json:"id"`
	UserID              string               `json:"userId"`
	VenueID             string               `json:"haliSahaId"`
	ReservationDateTime time.Time            `json:"reservationDateTime"`
	Status              string               `json:"status"`
	IsRecurring         bool                 `json:"isRecurring"`
	SubscriptionID      *string              `json:"subscriptionId"`
	LastUpdatedByID     *string              `json:"lastUpdatedById"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	Venue               VenueSummaryResponse `json:"haliSaha"`
}

type CreatedReservationResponse struct {
	ID string `json:"id"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := &ReservationResponse{}
	mustCopy(out, v)
	out.ReservationDateTime = out.ReservationDateTime.UTC()
	return out
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
