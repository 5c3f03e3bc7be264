//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/repository"
	repositorymock "halisaha-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingStatsRepository_LockVenue(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	testCases := []struct {
		name          string
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: venue locked"},
		{name: "error: venue missing", dbErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errors.New("lock timeout"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries)

			mockQueries.EXPECT().LockVenue(ctx, mockDB, venueID).Return(venueID, tc.dbErr)

			err := repo.LockVenue(ctx, mockDB, venueID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRatingStatsRepository_Aggregate(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	t.Run("success: returns count and sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRatingStatsRepository(mockQueries)

		mockQueries.EXPECT().AggregateVenueReviews(ctx, mockDB, venueID).
			Return(pgstore.ReviewAggregate{Count: 3, Sum: 13}, nil)

		count, sum, err := repo.Aggregate(ctx, mockDB, venueID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Equal(t, int64(13), sum)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRatingStatsRepository(mockQueries)

		mockQueries.EXPECT().AggregateVenueReviews(ctx, mockDB, venueID).
			Return(pgstore.ReviewAggregate{}, errors.New("database connection error"))

		_, _, err := repo.Aggregate(ctx, mockDB, venueID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRatingStatsRepository_Update(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	testCases := []struct {
		name          string
		rows          int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: rating written", rows: 1},
		{name: "error: venue deleted meanwhile", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries)

			want := pgstore.UpdateVenueRatingParams{ID: venueID, Rating: 4.3, ReviewCount: 3}
			mockQueries.EXPECT().UpdateVenueRating(ctx, mockDB, want).Return(tc.rows, tc.dbErr)

			err := repo.Update(ctx, mockDB, venueID, 4.3, 3)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
