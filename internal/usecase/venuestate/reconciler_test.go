//go:build unit

package venuestate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/usecase/venuestate"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/memstore"
	"halisaha-api/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcileFixture struct {
	store      *memstore.Store
	reconciler *venuestate.Reconciler
	venueID    uuid.UUID
	userID     uuid.UUID
}

func newReconcileFixture(t *testing.T, releaseOnDelete bool) *reconcileFixture {
	t.Helper()
	store := memstore.New()
	u := builder.NewUserBuilder().BuildDomain()
	store.PutUser(u)
	v := builder.NewVenueBuilder().BuildDomain()
	store.PutVenue(v)

	logger := testutil.DiscardLogger()
	publisher := &memstore.Publisher{}
	invalidator := &memstore.Invalidator{}
	ledger := venuestate.NewSlotLedger(store, publisher, invalidator, logger)
	rating := venuestate.NewRatingAggregator(store, publisher, invalidator, logger)
	return &reconcileFixture{
		store:      store,
		reconciler: venuestate.NewReconciler(store, ledger, rating, config.BookingConfig{ReleaseSlotOnDelete: releaseOnDelete}, logger),
		venueID:    v.ID(),
		userID:     u.ID(),
	}
}

func TestReconciler_Handle(t *testing.T) {
	ctx := context.Background()
	at := slot.New(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))

	t.Run("replays a slot add", func(t *testing.T) {
		f := newReconcileFixture(t, true)

		err := f.reconciler.Handle(ctx, venuestate.Task{Kind: venuestate.TaskSlotAdd, VenueID: f.venueID, Slot: &at, Attempt: 1})

		require.NoError(t, err)
		assert.Len(t, f.store.BookedSlots(f.venueID), 1)
	})

	t.Run("replays a slot remove", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		f.store.PutSlot(f.venueID, at)

		err := f.reconciler.Handle(ctx, venuestate.Task{Kind: venuestate.TaskSlotRemove, VenueID: f.venueID, Slot: &at})

		require.NoError(t, err)
		assert.Empty(t, f.store.BookedSlots(f.venueID))
	})

	t.Run("replays a rating recompute", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		f.store.PutReview(builder.NewReviewBuilder().WithUserID(f.userID).WithVenueID(f.venueID).WithRating(3).BuildDomain())

		err := f.reconciler.Handle(ctx, venuestate.Task{Kind: venuestate.TaskRatingRecompute, VenueID: f.venueID})

		require.NoError(t, err)
		assert.Equal(t, 3.0, f.store.Venue(f.venueID).Rating())
	})

	t.Run("surfaces failures so the consumer can retry", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		f.store.SlotErr = errors.New("timeout")

		err := f.reconciler.Handle(ctx, venuestate.Task{Kind: venuestate.TaskSlotAdd, VenueID: f.venueID, Slot: &at})

		assert.Error(t, err)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		assert.Error(t, f.reconciler.Handle(ctx, venuestate.Task{Kind: "venue.explode", VenueID: f.venueID}))
	})
}

func TestReconciler_Sweep(t *testing.T) {
	ctx := context.Background()
	active := slot.New(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
	cancelled := slot.New(time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC))
	stray := slot.New(time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC))

	seed := func(f *reconcileFixture) {
		f.store.PutReservation(builder.NewReservationBuilder().WithUserID(f.userID).WithVenueID(f.venueID).WithAt(active.Time()).BuildDomain())
		f.store.PutReservation(builder.NewReservationBuilder().WithUserID(f.userID).WithVenueID(f.venueID).WithAt(cancelled.Time()).AsCancelled().BuildDomain())
		f.store.PutSlot(f.venueID, stray)
		f.store.PutReview(builder.NewReviewBuilder().WithUserID(f.userID).WithVenueID(f.venueID).WithRating(5).BuildDomain())
		f.store.PutReview(builder.NewReviewBuilder().WithUserID(f.userID).WithVenueID(f.venueID).WithRating(4).BuildDomain())
	}

	t.Run("restores active slots, prunes orphans and recomputes ratings", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		seed(f)

		res, err := f.reconciler.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, venuestate.SweepResult{SlotsRestored: 1, SlotsPruned: 1, VenuesRated: 1}, res)
		got := f.store.BookedSlots(f.venueID)
		require.Len(t, got, 1)
		assert.True(t, active.Equal(got[0]))
		assert.Equal(t, 4.5, f.store.Venue(f.venueID).Rating())
		assert.Equal(t, 2, f.store.Venue(f.venueID).ReviewCount())
	})

	t.Run("a slot booked by a cancelled reservation is not an orphan", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		seed(f)
		f.store.PutSlot(f.venueID, cancelled)

		res, err := f.reconciler.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.SlotsPruned)
		got := f.store.BookedSlots(f.venueID)
		require.Len(t, got, 2)
		assert.True(t, slot.NewSet(got...).Contains(cancelled))
		assert.False(t, slot.NewSet(got...).Contains(stray))
	})

	t.Run("keeps unheld slots when deletes do not release them", func(t *testing.T) {
		f := newReconcileFixture(t, false)
		seed(f)

		res, err := f.reconciler.Sweep(ctx)

		require.NoError(t, err)
		assert.Zero(t, res.SlotsPruned)
		assert.Len(t, f.store.BookedSlots(f.venueID), 2)
	})

	t.Run("slot failure aborts before ratings", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		seed(f)
		f.store.SlotErr = errors.New("timeout")

		res, err := f.reconciler.Sweep(ctx)

		assert.Error(t, err)
		assert.Zero(t, res.VenuesRated)
	})

	t.Run("rating failures are joined", func(t *testing.T) {
		f := newReconcileFixture(t, true)
		seed(f)
		f.store.RatingErr = errors.New("deadlock")

		res, err := f.reconciler.Sweep(ctx)

		assert.Error(t, err)
		assert.Zero(t, res.VenuesRated)
		assert.Equal(t, int64(1), res.SlotsRestored)
	})
}
