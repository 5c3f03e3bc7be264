//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/testutil"
	queriesmock "halisaha-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type venueQueriesSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	readStore *queriesmock.MockVenueReadStore
	cache     *queriesmock.MockVenueListCache
	q         queries.VenueQueries
}

func TestVenueQueriesSuite(t *testing.T) {
	suite.Run(t, new(venueQueriesSuite))
}

func (s *venueQueriesSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockVenueReadStore(s.ctrl)
	s.cache = queriesmock.NewMockVenueListCache(s.ctrl)
	s.q = queries.NewVenueQueries(s.readStore, s.cache, testutil.DiscardLogger())
}

func (s *venueQueriesSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *venueQueriesSuite) TestList_CacheHit() {
	cached := []*queries.VenueView{builder.NewVenueBuilder().BuildView()}
	s.cache.EXPECT().GetVenueList(gomock.Any()).Return(cached, true, nil)

	got, err := s.q.List(s.ctx)

	s.Require().NoError(err)
	s.Empty(cmp.Diff(cached, got))
}

func (s *venueQueriesSuite) TestList_MissFillsCache() {
	views := []*queries.VenueView{builder.NewVenueBuilder().BuildView(), builder.NewVenueBuilder().WithName("Arena").BuildView()}
	gomock.InOrder(
		s.cache.EXPECT().GetVenueList(gomock.Any()).Return(nil, false, nil),
		s.readStore.EXPECT().List(gomock.Any()).Return(views, nil),
		s.cache.EXPECT().SetVenueList(gomock.Any(), views).Return(nil),
	)

	got, err := s.q.List(s.ctx)

	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *venueQueriesSuite) TestList_CacheFailuresFallBackToStore() {
	views := []*queries.VenueView{builder.NewVenueBuilder().BuildView()}
	s.cache.EXPECT().GetVenueList(gomock.Any()).Return(nil, false, errors.New("redis down"))
	s.readStore.EXPECT().List(gomock.Any()).Return(views, nil)
	s.cache.EXPECT().SetVenueList(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := s.q.List(s.ctx)

	s.Require().NoError(err)
	s.Equal(views, got)
}

func (s *venueQueriesSuite) TestList_StoreFailure() {
	s.cache.EXPECT().GetVenueList(gomock.Any()).Return(nil, false, nil)
	s.readStore.EXPECT().List(gomock.Any()).Return(nil, infra.WrapRepoErr("list", errors.New("conn refused")))

	_, err := s.q.List(s.ctx)

	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *venueQueriesSuite) TestGetByID_NotFound() {
	id := uuid.New()
	s.readStore.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

	_, err := s.q.GetByID(s.ctx, id)

	s.True(errs.Is(err, errs.ErrVenueNotFound))
}

func (s *venueQueriesSuite) TestRatingStats() {
	tests := []struct {
		name string
		dist [5]int
		want queries.RatingStats
	}{
		{"no reviews", [5]int{}, queries.RatingStats{}},
		{"5, 3 and 4", [5]int{0, 0, 1, 1, 1}, queries.RatingStats{ReviewCount: 3, Average: 4.0, Distribution: [5]int{0, 0, 1, 1, 1}}},
		{"rounds to one decimal", [5]int{0, 0, 0, 2, 1}, queries.RatingStats{ReviewCount: 3, Average: 4.3, Distribution: [5]int{0, 0, 0, 2, 1}}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			view := builder.NewVenueBuilder().BuildView()
			s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			s.readStore.EXPECT().RatingDistribution(gomock.Any(), view.ID).Return(tt.dist, nil)

			got, err := s.q.RatingStats(s.ctx, view.ID)

			s.Require().NoError(err)
			tt.want.VenueID = view.ID
			s.Empty(cmp.Diff(&tt.want, got))
		})
	}
}

func (s *venueQueriesSuite) TestRatingStats_UnknownVenue() {
	id := uuid.New()
	s.readStore.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

	_, err := s.q.RatingStats(s.ctx, id)

	s.True(errs.Is(err, errs.ErrVenueNotFound))
}
