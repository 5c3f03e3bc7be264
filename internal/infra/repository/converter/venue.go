package converter

import (
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
)

func VenueToParams(v *venue.Venue) pgstore.VenueParams {
	a := v.Attributes()
	images := a.ImagesURL
	if images == nil {
		images = []string{}
	}
	return pgstore.VenueParams{
		ID:               v.ID(),
		OwnerID:          v.OwnerID(),
		Name:             a.Name,
		Slug:             v.Slug(),
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
		MaxPlayers:       int32(a.MaxPlayers), // #nosec G115 -- bounded by validation
		HasParking:       a.Amenities.Parking,
		HasShowers:       a.Amenities.Showers,
		HasShoeRental:    a.Amenities.ShoeRental,
		HasCafeteria:     a.Amenities.Cafeteria,
		HasNightLighting: a.Amenities.NightLighting,
		ImagesUrl:        images,
		CreatedAt:        pgconv.TimeToPgtype(v.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(v.UpdatedAt()),
	}
}

func VenueFromRow(row pgstore.Venue) *venue.Venue {
	return venue.ReconstructVenue(
		row.ID,
		row.OwnerID,
		row.Slug,
		VenueAttributesFromRow(row),
		row.Rating,
		int(row.ReviewCount),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func VenueAttributesFromRow(row pgstore.Venue) venue.Attributes {
	return venue.Attributes{
		Name:         row.Name,
		Location:     row.Location,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		Phone:        row.Phone,
		Description:  row.Description,
		PricePerHour: row.PricePerHour,
		StartHour:    row.StartHour,
		EndHour:      row.EndHour,
		Size:         row.Size,
		Surface:      row.Surface,
		MaxPlayers:   int(row.MaxPlayers),
		Amenities: venue.Amenities{
			Parking:       row.HasParking,
			Showers:       row.HasShowers,
			ShoeRental:    row.HasShoeRental,
			Cafeteria:     row.HasCafeteria,
			NightLighting: row.HasNightLighting,
		},
		ImagesURL: row.ImagesUrl,
	}
}
