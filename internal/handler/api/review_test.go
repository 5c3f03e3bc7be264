//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"halisaha-api/internal/domain/policy"
	domreview "halisaha-api/internal/domain/review"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/api"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/httptest"
	"halisaha-api/tests/common/testutil"
	commandsmock "halisaha-api/tests/mock/commands"
	queriesmock "halisaha-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	actor        policy.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.actor = policy.Actor{ID: uuid.New(), Role: user.RoleUser}

	h := api.NewReviewHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/api/review")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	authed := g.Group("", fakeAuth(&s.actor))
	authed.POST("/create", h.Create)
	authed.PUT("/update/:id", h.Update)
	authed.DELETE("/delete/:id", h.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/api/review/create"
	b := builder.NewReviewBuilder().WithUserID(s.actor.ID)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Set("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Set("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Set("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Set("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Set("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Set("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseReview{
		{name: "missing field: haliSahaId", mutate: testutil.Without("haliSahaId"), expectCode: http.StatusBadRequest},
		{name: "missing field: rating", mutate: testutil.Without("rating"), expectCode: http.StatusBadRequest},
		{name: "missing field: comment", mutate: testutil.Without("comment"), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Set("comment", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with the stored review", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateReviewInput{
			VenueID: b.VenueID, Rating: b.Rating, Comment: b.Comment,
		}).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertMessage(s.T(), rec, "Yorum başarıyla oluşturuldu.")
		s.Equal(view.ID.String(), body.ID)
		s.Equal(b.VenueID.String(), body.VenueID)
		s.Equal(b.UserName, body.User.Name)
	})

	s.Run("validation", func() {
		for _, group := range [][]testCaseReview{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
					}
					body := testutil.Payload(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Geçersiz yorum verisi.")
					}
				})
			}
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token bulunamadı.")
	})

	s.Run("error: 404 for an unknown venue", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.ErrVenueNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Halı saha bulunamadı.")
	})

	s.Run("error: 403 when posting for another user", func() {
		other := uuid.New()
		body := testutil.Payload(s.T(), reqBody, testutil.Set("userId", other.String()))
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, in commands.CreateReviewInput) (uuid.UUID, error) {
				s.Require().NotNil(in.UserID)
				s.Equal(other, *in.UserID)
				return uuid.Nil, errs.ErrForbidden
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestList() {
	venueID := uuid.New()
	views := []*queries.ReviewView{
		builder.NewReviewBuilder().WithVenueID(venueID).BuildView(),
		builder.NewReviewBuilder().WithVenueID(venueID).AsPoorRating().BuildView(),
	}

	s.Run("success: all reviews without a filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*uuid.UUID)(nil)).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/review", nil, "")

		var body []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: filtered by venue", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), &venueID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/review?haliSahaId="+venueID.String(), nil, "")

		var body []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body[1].Rating)
	})

	s.Run("error: 400 on malformed venue filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/review?haliSahaId=xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz ID.")
	})
}

func (s *ReviewHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReviewNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/review/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Yorum bulunamadı.")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	b := builder.NewReviewBuilder().WithUserID(s.actor.ID)
	url := "/api/review/update/" + b.ID.String()

	s.Run("success: only sent fields are patched", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, b.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, _ uuid.UUID, p domreview.Patch) error {
				s.Require().NotNil(p.Rating)
				s.Equal(3, *p.Rating)
				s.Nil(p.Comment)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.WithRating(3).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 3}, "token")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertMessage(s.T(), rec, "Yorum başarıyla güncellendi.")
		s.Equal(3, body.Rating)
	})

	s.Run("error: 400 on out-of-range rating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 9}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz güncelleme verisi.")
	})

	s.Run("error: 403 on someone else's review", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, b.ID, gomock.Any()).Return(errs.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": "fena değil"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/review/delete/" + id.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertMessage(s.T(), rec, "Yorum silindi.")
	})

	s.Run("error: 404 uses the delete-specific message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(errs.ErrReviewNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Silinecek yorum bulunamadı.")
	})
}
