package response

import (
	"time"

	"halisaha-api/internal/usecase/queries"
)

type VenueResponse struct {
	ID               string      `json:"id"`
	OwnerID          string      `json:"ownerId"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Location         string      `json:"location"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Phone            string      `json:"phone"`
	Description      string      `json:"description"`
	PricePerHour     float64     `json:"pricePerHour"`
	StartHour        string      `json:"startHour"`
	EndHour          string      `json:"endHour"`
	Size             string      `json:"size"`
	Surface          string      `json:"surface"`
	MaxPlayers       int         `json:"maxPlayers"`
	HasParking       bool        `json:"hasParking"`
	HasShowers       bool        `json:"hasShowers"`
	HasShoeRental    bool        `json:"hasShoeRental"`
	HasCafeteria     bool        `json:"hasCafeteria"`
	HasNightLighting bool        `json:"hasNightLighting"`
	ImagesURL        []string    `json:"imagesUrl"`
	BookedSlots      []time.Time `json:"bookedSlots"`
	Rating           float64     `json:"rating"`
	ReviewCount      int         `json:"reviewCount"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

type CreatedVenueResponse struct {
	ID string `json:"id"`
}

type RatingStatsResponse struct {
	VenueID      string  `json:"haliSahaId"`
	ReviewCount  int     `json:"reviewCount"`
	Average      float64 `json:"average"`
	Distribution [5]int  `json:"distribution"`
}

func FromVenueView(v *queries.VenueView) *VenueResponse {
	out := &VenueResponse{}
	mustCopy(out, v)
	if out.ImagesURL == nil {
		out.ImagesURL = []string{}
	}
	if out.BookedSlots == nil {
		out.BookedSlots = []time.Time{}
	}
	return out
}

func FromVenueViews(vs []*queries.VenueView) []*VenueResponse {
	out := make([]*VenueResponse, len(vs))
	for i, v := range vs {
		out[i] = FromVenueView(v)
	}
	return out
}

func FromRatingStats(s *queries.RatingStats) *RatingStatsResponse {
	out := &RatingStatsResponse{}
	mustCopy(out, s)
	return out
}
