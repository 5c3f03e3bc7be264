package request

import (
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/pkg/patch"
	"halisaha-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
	// only admins may create on behalf of another owner
	OwnerID          *uuid.UUID `json:"ownerId"`
	Name             string     `json:"name" binding:"required,min=1"`
	Location         string     `json:"location" binding:"required,min=1"`
	Latitude         *float64   `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude        *float64   `json:"longitude" binding:"required,gte=-180,lte=180"`
	Phone            string     `json:"phone" binding:"required,min=10"`
	Description      string     `json:"description" binding:"required,min=1"`
	PricePerHour     float64    `json:"pricePerHour" binding:"required,gt=0"`
	StartHour        string     `json:"startHour" binding:"required,min=1"`
	EndHour          string     `json:"endHour" binding:"required,min=1"`
	Size             string     `json:"size" binding:"required,min=1"`
	Surface          string     `json:"surface" binding:"required,min=1"`
	MaxPlayers       int        `json:"maxPlayers" binding:"required,gt=0"`
	HasParking       bool       `json:"hasParking"`
	HasShowers       bool       `json:"hasShowers"`
	HasShoeRental    bool       `json:"hasShoeRental"`
	HasCafeteria     bool       `json:"hasCafeteria"`
	HasNightLighting bool       `json:"hasNightLighting"`
	ImagesURL        []string   `json:"imagesUrl" binding:"omitempty,dive,min=1"`
}

func (r *CreateVenueRequest) ToInput() commands.CreateVenueInput {
	return commands.CreateVenueInput{
		OwnerID: r.OwnerID,
		Attributes: venue.Attributes{
			Name:         r.Name,
			Location:     r.Location,
			Latitude:     patch.Coalesce(r.Latitude, 0),
			Longitude:    patch.Coalesce(r.Longitude, 0),
			Phone:        r.Phone,
			Description:  r.Description,
			PricePerHour: r.PricePerHour,
			StartHour:    r.StartHour,
			EndHour:      r.EndHour,
			Size:         r.Size,
			Surface:      r.Surface,
			MaxPlayers:   r.MaxPlayers,
			Amenities: venue.Amenities{
				Parking:       r.HasParking,
				Showers:       r.HasShowers,
				ShoeRental:    r.HasShoeRental,
				Cafeteria:     r.HasCafeteria,
				NightLighting: r.HasNightLighting,
			},
			ImagesURL: r.ImagesURL,
		},
	}
}

// UpdateVenueRequest carries no rating, review count or booked slots; those are derived.
type UpdateVenueRequest struct {
	Name             *string   `json:"name" binding:"omitempty,min=1"`
	Location         *string   `json:"location" binding:"omitempty,min=1"`
	Latitude         *float64  `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude        *float64  `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Phone            *string   `json:"phone" binding:"omitempty,min=10"`
	Description      *string   `json:"description" binding:"omitempty,min=1"`
	PricePerHour     *float64  `json:"pricePerHour" binding:"omitempty,gt=0"`
	StartHour        *string   `json:"startHour" binding:"omitempty,min=1"`
	EndHour          *string   `json:"endHour" binding:"omitempty,min=1"`
	Size             *string   `json:"size" binding:"omitempty,min=1"`
	Surface          *string   `json:"surface" binding:"omitempty,min=1"`
	MaxPlayers       *int      `json:"maxPlayers" binding:"omitempty,gt=0"`
	HasParking       *bool     `json:"hasParking"`
	HasShowers       *bool     `json:"hasShowers"`
	HasShoeRental    *bool     `json:"hasShoeRental"`
	HasCafeteria     *bool     `json:"hasCafeteria"`
	HasNightLighting *bool     `json:"hasNightLighting"`
	ImagesURL        *[]string `json:"imagesUrl" binding:"omitempty,dive,min=1"`
}

func (r *UpdateVenueRequest) ToPatch() venue.Patch {
	return venue.Patch{
		Name:          r.Name,
		Location:      r.Location,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Phone:         r.Phone,
		Description:   r.Description,
		PricePerHour:  r.PricePerHour,
		StartHour:     r.StartHour,
		EndHour:       r.EndHour,
		Size:          r.Size,
		Surface:       r.Surface,
		MaxPlayers:    r.MaxPlayers,
		Parking:       r.HasParking,
		Showers:       r.HasShowers,
		ShoeRental:    r.HasShoeRental,
		Cafeteria:     r.HasCafeteria,
		NightLighting: r.HasNightLighting,
		ImagesURL:     r.ImagesURL,
	}
}
