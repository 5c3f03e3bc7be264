//go:build unit || e2e

package builder

import (
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/domain/venue"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Slug        string
	Attrs       venue.Attributes
	Rating      float64
	ReviewCount int
	BookedSlots []slot.Slot
	CreatedAt   time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Slug:    "yildiz-hali-saha",
		Attrs: venue.Attributes{
			Name:         "Yıldız Halı Saha",
			Location:     "Kadıköy, İstanbul",
			Latitude:     40.99,
			Longitude:    29.03,
			Phone:        "05321234567",
			Description:  "Kapalı, ışıklı saha",
			PricePerHour: 1200,
			StartHour:    "09:00",
			EndHour:      "23:00",
			Size:         "30x50",
			Surface:      "suni çim",
			MaxPlayers:   14,
			Amenities:    venue.Amenities{Parking: true, NightLighting: true},
			ImagesURL:    []string{},
		},
		CreatedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (v *VenueBuilder) BuildDomain() *venue.Venue {
	return venue.ReconstructVenue(v.ID, v.OwnerID, v.Slug, v.Attrs, v.Rating, v.ReviewCount, v.CreatedAt, v.CreatedAt)
}

func (v *VenueBuilder) BuildRow() pgstore.Venue {
	a := v.Attrs
	return pgstore.Venue{
		ID:               v.ID,
		OwnerID:          v.OwnerID,
		Name:             a.Name,
		Slug:             v.Slug,
		Location:         a.Location,
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		Phone:            a.Phone,
		Description:      a.Description,
		PricePerHour:     a.PricePerHour,
		StartHour:        a.StartHour,
		EndHour:          a.EndHour,
		Size:             a.Size,
		Surface:          a.Surface,
		MaxPlayers:       int32(a.MaxPlayers), // #nosec G115
		HasParking:       a.Amenities.Parking,
		HasShowers:       a.Amenities.Showers,
		HasShoeRental:    a.Amenities.ShoeRental,
		HasCafeteria:     a.Amenities.Cafeteria,
		HasNightLighting: a.Amenities.NightLighting,
		ImagesUrl:        a.ImagesURL,
		Rating:           v.Rating,
		ReviewCount:      int32(v.ReviewCount), // #nosec G115
		CreatedAt:        pgconv.TimeToPgtype(v.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(v.CreatedAt),
	}
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	a := v.Attrs
	booked := make([]time.Time, 0, len(v.BookedSlots))
	for _, s := range slot.NewSet(v.BookedSlots...).Slots() {
		booked = append(booked, s.Time())
	}
	return &queries.VenueView{
		ID:               v.ID,
		OwnerID:          v.OwnerID,
		Name:             a.Name,
		Slug:             v.Slug,
		Location:         a.Location,
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		Phone:            a.Phone,
		Description:      a.Description,
		PricePerHour:     a.PricePerHour,
		StartHour:        a.StartHour,
		EndHour:          a.EndHour,
		Size:             a.Size,
		Surface:          a.Surface,
		MaxPlayers:       a.MaxPlayers,
		HasParking:       a.Amenities.Parking,
		HasShowers:       a.Amenities.Showers,
		HasShoeRental:    a.Amenities.ShoeRental,
		HasCafeteria:     a.Amenities.Cafeteria,
		HasNightLighting: a.Amenities.NightLighting,
		ImagesURL:        a.ImagesURL,
		BookedSlots:      booked,
		Rating:           v.Rating,
		ReviewCount:      v.ReviewCount,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.CreatedAt,
	}
}

func (v *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithOwnerID(id uuid.UUID) *VenueBuilder {
	v.OwnerID = id
	return v
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Attrs.Name = name
	return v
}

func (v *VenueBuilder) WithRating(rating float64, count int) *VenueBuilder {
	v.Rating = rating
	v.ReviewCount = count
	return v
}

func (v *VenueBuilder) WithBookedSlots(slots ...slot.Slot) *VenueBuilder {
	v.BookedSlots = slots
	return v
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

func (v *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	a := v.Attrs
	lat, lng := a.Latitude, a.Longitude
	return reqdto.CreateVenueRequest{
		Name:             a.Name,
		Location:         a.Location,
		Latitude:         &lat,
		Longitude:        &lng,
		Phone:            a.Phone,
		Description:      a.Description,
		PricePerHour:     a.PricePerHour,
		StartHour:        a.StartHour,
		EndHour:          a.EndHour,
		Size:             a.Size,
		Surface:          a.Surface,
		MaxPlayers:       a.MaxPlayers,
		HasParking:       a.Amenities.Parking,
		HasShowers:       a.Amenities.Showers,
		HasShoeRental:    a.Amenities.ShoeRental,
		HasCafeteria:     a.Amenities.Cafeteria,
		HasNightLighting: a.Amenities.NightLighting,
		ImagesURL:        a.ImagesURL,
	}
}
