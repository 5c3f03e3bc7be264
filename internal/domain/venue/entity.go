package venue

import (
	"time"

	"halisaha-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Attributes is everything an owner authors about a venue.
type Attributes struct {
	Name         string
	Location     string
	Latitude     float64
	Longitude    float64
	Phone        string
	Description  string
	PricePerHour float64
	StartHour    string
	EndHour      string
	Size         string
	Surface      string
	MaxPlayers   int
	Amenities    Amenities
	ImagesURL    []string
}

// Patch leaves nil fields untouched. Derived fields (booked slots, rating, review count) are not patchable.
type Patch struct {
	Name          *string
	Location      *string
	Latitude      *float64
	Longitude     *float64
	Phone         *string
	Description   *string
	PricePerHour  *float64
	StartHour     *string
	EndHour       *string
	Size          *string
	Surface       *string
	MaxPlayers    *int
	Parking       *bool
	Showers       *bool
	ShoeRental    *bool
	Cafeteria     *bool
	NightLighting *bool
	ImagesURL     *[]string
}

type Venue struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	slug        string
	attrs       Attributes
	coordinates Coordinates
	rating      float64
	reviewCount int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVenue(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Venue, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	v := &Venue{
		id:        uuid.New(),
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}
	if err := v.assign(attrs); err != nil {
		return nil, err
	}
	v.slug = makeSlug(v.attrs.Name, v.id)
	return v, nil
}

func ReconstructVenue(id, ownerID uuid.UUID, slugValue string, attrs Attributes, rating float64, reviewCount int, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		id:          id,
		ownerID:     ownerID,
		slug:        slugValue,
		attrs:       attrs,
		coordinates: Coordinates{latitude: attrs.Latitude, longitude: attrs.Longitude},
		rating:      rating,
		reviewCount: reviewCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Apply validates the patched venue as a whole; the receiver is left unchanged on error.
func (v *Venue) Apply(p Patch, now time.Time) (*Venue, error) {
	a := v.attrs
	next := Attributes{
		Name:         patch.Coalesce(p.Name, a.Name),
		Location:     patch.Coalesce(p.Location, a.Location),
		Latitude:     patch.Coalesce(p.Latitude, a.Latitude),
		Longitude:    patch.Coalesce(p.Longitude, a.Longitude),
		Phone:        patch.Coalesce(p.Phone, a.Phone),
		Description:  patch.Coalesce(p.Description, a.Description),
		PricePerHour: patch.Coalesce(p.PricePerHour, a.PricePerHour),
		StartHour:    patch.Coalesce(p.StartHour, a.StartHour),
		EndHour:      patch.Coalesce(p.EndHour, a.EndHour),
		Size:         patch.Coalesce(p.Size, a.Size),
		Surface:      patch.Coalesce(p.Surface, a.Surface),
		MaxPlayers:   patch.Coalesce(p.MaxPlayers, a.MaxPlayers),
		Amenities: Amenities{
			Parking:       patch.Coalesce(p.Parking, a.Amenities.Parking),
			Showers:       patch.Coalesce(p.Showers, a.Amenities.Showers),
			ShoeRental:    patch.Coalesce(p.ShoeRental, a.Amenities.ShoeRental),
			Cafeteria:     patch.Coalesce(p.Cafeteria, a.Amenities.Cafeteria),
			NightLighting: patch.Coalesce(p.NightLighting, a.Amenities.NightLighting),
		},
		ImagesURL: patch.Coalesce(p.ImagesURL, a.ImagesURL),
	}

	updated := *v
	if err := updated.assign(next); err != nil {
		return nil, err
	}
	if patch.Changed(p.Name, a.Name) {
		updated.slug = makeSlug(updated.attrs.Name, updated.id)
	}
	updated.updatedAt = now
	return &updated, nil
}

func (v *Venue) assign(attrs Attributes) error {
	var err error
	if attrs.Name, err = requireText(attrs.Name, ErrEmptyName); err != nil {
		return err
	}
	if attrs.Location, err = requireText(attrs.Location, ErrEmptyLocation); err != nil {
		return err
	}
	coords, err := NewCoordinates(attrs.Latitude, attrs.Longitude)
	if err != nil {
		return err
	}
	if attrs.Phone, err = validatePhone(attrs.Phone); err != nil {
		return err
	}
	if attrs.Description, err = requireText(attrs.Description, ErrEmptyDescription); err != nil {
		return err
	}
	if attrs.PricePerHour <= 0 {
		return ErrInvalidPrice
	}
	if attrs.StartHour, err = requireText(attrs.StartHour, ErrEmptyHours); err != nil {
		return err
	}
	if attrs.EndHour, err = requireText(attrs.EndHour, ErrEmptyHours); err != nil {
		return err
	}
	if attrs.Size, err = requireText(attrs.Size, ErrEmptySize); err != nil {
		return err
	}
	if attrs.Surface, err = requireText(attrs.Surface, ErrEmptySurface); err != nil {
		return err
	}
	if attrs.MaxPlayers <= 0 {
		return ErrInvalidMaxPlayers
	}
	if attrs.ImagesURL, err = validateImages(attrs.ImagesURL); err != nil {
		return err
	}

	v.attrs = attrs
	v.coordinates = coords
	return nil
}

// slugs stay unique across venues sharing a name
func makeSlug(name string, id uuid.UUID) string {
	return slug.MakeLang(name, "tr") + "-" + id.String()[:8]
}

func (v *Venue) ID() uuid.UUID            { return v.id }
func (v *Venue) OwnerID() uuid.UUID       { return v.ownerID }
func (v *Venue) Slug() string             { return v.slug }
func (v *Venue) Attributes() Attributes   { return v.attrs }
func (v *Venue) Coordinates() Coordinates { return v.coordinates }
func (v *Venue) Rating() float64          { return v.rating }
func (v *Venue) ReviewCount() int         { return v.reviewCount }
func (v *Venue) CreatedAt() time.Time     { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time     { return v.updatedAt }
