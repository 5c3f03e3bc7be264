//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/readstore"
	"halisaha-api/tests/common/builder"
	readstoremock "halisaha-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueReadStore_List(t *testing.T) {
	ctx := context.Background()
	a := builder.NewVenueBuilder().WithName("Yıldız Halı Saha")
	b := builder.NewVenueBuilder().WithName("Kartal Arena")
	at := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
	store := readstore.NewVenueReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListVenues(ctx, gomock.Any()).Return([]pgstore.Venue{a.BuildRow(), b.BuildRow()}, nil)
	mockQueries.EXPECT().ListBookedSlots(ctx, gomock.Any(), []uuid.UUID{a.ID, b.ID}).
		Return([]pgstore.BookedSlot{
			{VenueID: a.ID, SlotAt: at},
			{VenueID: a.ID, SlotAt: at.Add(time.Hour)},
		}, nil)

	got, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []time.Time{at, at.Add(time.Hour)}, got[0].BookedSlots)
	assert.NotNil(t, got[1].BookedSlots)
	assert.Empty(t, got[1].BookedSlots)
}

func TestVenueReadStore_ListEmptySkipsSlotQuery(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
	store := readstore.NewVenueReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListVenues(ctx, gomock.Any()).Return(nil, nil)

	got, err := store.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVenueReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
		store := readstore.NewVenueReadStore(mockQueries, nil)
		id := uuid.New()

		mockQueries.EXPECT().FindVenueByID(ctx, gomock.Any(), id).Return(pgstore.Venue{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("slot query failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
		store := readstore.NewVenueReadStore(mockQueries, nil)
		v := builder.NewVenueBuilder()

		mockQueries.EXPECT().FindVenueByID(ctx, gomock.Any(), v.ID).Return(v.BuildRow(), nil)
		mockQueries.EXPECT().ListBookedSlots(ctx, gomock.Any(), []uuid.UUID{v.ID}).Return(nil, errDBConnectionLost)

		_, err := store.FindByID(ctx, v.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestVenueReadStore_RatingDistribution(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
	store := readstore.NewVenueReadStore(mockQueries, nil)

	mockQueries.EXPECT().VenueRatingDistribution(ctx, gomock.Any(), venueID).
		Return([]pgstore.RatingBucket{{Rating: 5, Count: 3}, {Rating: 2, Count: 1}}, nil)

	got, err := store.RatingDistribution(ctx, venueID)

	require.NoError(t, err)
	assert.Equal(t, [5]int{0, 1, 0, 0, 3}, got)
}
