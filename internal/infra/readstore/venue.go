package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueReadQueries interface {
	FindVenueByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Venue, error)
	ListVenues(ctx context.Context, db pgstore.DBTX) ([]pgstore.Venue, error)
	ListBookedSlots(ctx context.Context, db pgstore.DBTX, venueIDs []uuid.UUID) ([]pgstore.BookedSlot, error)
	VenueRatingDistribution(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID) ([]pgstore.RatingBucket, error)
}

type VenueReadStore struct {
	queries VenueReadQueries
	db      pgstore.DBTX
}

func NewVenueReadStore(queries VenueReadQueries, db pgstore.DBTX) *VenueReadStore {
	return &VenueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	row, err := r.queries.FindVenueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}

	views := []*queries.VenueView{toVenueView(row)}
	if err := r.attachSlots(ctx, views); err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *VenueReadStore) List(ctx context.Context) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListVenues(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}

	views := make([]*queries.VenueView, len(rows))
	for i, row := range rows {
		views[i] = toVenueView(row)
	}
	if err := r.attachSlots(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *VenueReadStore) RatingDistribution(ctx context.Context, venueID uuid.UUID) ([5]int, error) {
	var dist [5]int
	buckets, err := r.queries.VenueRatingDistribution(ctx, r.db, venueID)
	if err != nil {
		return dist, infra.WrapRepoErr("failed to get rating distribution", err)
	}
	for _, b := range buckets {
		if b.Rating >= 1 && b.Rating <= 5 {
			dist[b.Rating-1] = int(b.Count)
		}
	}
	return dist, nil
}

// attachSlots loads booked slots for all views with a single query.
func (r *VenueReadStore) attachSlots(ctx context.Context, views []*queries.VenueView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.VenueView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.queries.ListBookedSlots(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booked slots", err)
	}
	for _, row := range rows {
		if v, ok := byID[row.VenueID]; ok {
			v.BookedSlots = append(v.BookedSlots, slot.New(row.SlotAt).Time())
		}
	}
	return nil
}

func toVenueView(row pgstore.Venue) *queries.VenueView {
	images := row.ImagesUrl
	if images == nil {
		images = []string{}
	}
	return &queries.VenueView{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		Name:             row.Name,
		Slug:             row.Slug,
		Location:         row.Location,
		Latitude:         row.Latitude,
		Longitude:        row.Longitude,
		Phone:            row.Phone,
		Description:      row.Description,
		PricePerHour:     row.PricePerHour,
		StartHour:        row.StartHour,
		EndHour:          row.EndHour,
		Size:             row.Size,
		Surface:          row.Surface,
		MaxPlayers:       int(row.MaxPlayers),
		HasParking:       row.HasParking,
		HasShowers:       row.HasShowers,
		HasShoeRental:    row.HasShoeRental,
		HasCafeteria:     row.HasCafeteria,
		HasNightLighting: row.HasNightLighting,
		ImagesURL:        images,
		BookedSlots:      []time.Time{},
		Rating:           row.Rating,
		ReviewCount:      int(row.ReviewCount),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
