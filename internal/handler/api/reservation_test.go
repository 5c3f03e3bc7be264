//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/reservation"
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
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	actor        policy.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = policy.Actor{ID: uuid.New(), Role: user.RoleUser}

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/api/reservation", fakeAuth(&s.actor))
	g.POST("/create", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/delete/:id", h.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservation/create"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.WithUserID(s.actor.ID).BuildView()

	s.Run("success: 201 with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, in commands.CreateReservationInput) (uuid.UUID, error) {
				s.Equal(b.VenueID, in.VenueID)
				s.True(in.Slot.Equal(b.Slot()))
				s.Nil(in.UserID)
				s.Nil(in.Status)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertMessage(s.T(), rec, "Rezervasyon başarıyla oluşturuldu.")
		s.Equal(view.ID.String(), body.ID)
		s.Equal(b.VenueID.String(), body.VenueID)
		s.Equal("pending", body.Status)
		s.True(body.ReservationDateTime.Equal(b.At))
		s.Equal(b.VenueName, body.Venue.Name)
	})

	s.Run("success: explicit status is passed through", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, in commands.CreateReservationInput) (uuid.UUID, error) {
				s.Require().NotNil(in.Status)
				s.Equal(reservation.StatusCancelled, *in.Status)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		body := testutil.Payload(s.T(), reqBody, testutil.Set("status", "cancelled"))
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: 201 even when the read-back fails", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(nil, errs.Mark(policy.ErrForbidden, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertMessage(s.T(), rec, "Rezervasyon başarıyla oluşturuldu.")
		s.Equal(view.ID.String(), gjson.GetBytes(rec.Body.Bytes(), "data.id").String())
	})

	s.Run("error: 400 on invalid payloads", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing haliSahaId", mutate: testutil.Without("haliSahaId")},
			{name: "missing reservationDateTime", mutate: testutil.Without("reservationDateTime")},
			{name: "unparsable reservationDateTime", mutate: testutil.Set("reservationDateTime", "yarın akşam")},
			{name: "unknown status", mutate: testutil.Set("status", "confirmed")},
			{name: "malformed haliSahaId", mutate: testutil.Set("haliSahaId", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Payload(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz rezervasyon verisi.")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token bulunamadı.")
	})

	s.Run("error: mapped use-case failures", func() {
		cases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{name: "booking for someone else", err: errs.ErrForbidden, code: http.StatusForbidden, message: "Bu işlemi yapmaya yetkiniz yok."},
			{name: "unknown venue", err: errs.Wrap(errs.ErrVenueNotFound, "load venue"), code: http.StatusNotFound, message: "Halı saha bulunamadı."},
			{name: "domain validation", err: errs.Mark(errors.New("bad slot"), errs.ErrDomainValidation), code: http.StatusBadRequest, message: "Geçersiz rezervasyon verisi."},
			{name: "storage failure", err: errs.ErrDatabaseOperationFailed, code: http.StatusInternalServerError, message: "Rezervasyon oluşturulamadı."},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
			})
		}
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: returns what the actor may see", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().AsApproved().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/api/reservation", nil, "token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("approved", body[1].Status)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/api/reservation", nil, "token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body)
		s.Empty(body)
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/api/reservation/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.UserID.String(), body.UserID)
		s.Equal(view.Venue.OwnerID.String(), body.Venue.OwnerID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/api/reservation/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz ID.")
	})

	s.Run("error: 403 for a stranger's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(nil, errs.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(nil, errs.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rezervasyon bulunamadı.")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	s.actor.Role = user.RoleOwner
	b := builder.NewReservationBuilder().WithVenueOwnerID(s.actor.ID)
	url := "/api/reservation/update/" + b.ID.String()

	s.Run("success: status and slot become a patch", func() {
		moved := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, b.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ policy.Actor, _ uuid.UUID, p reservation.Patch) error {
				s.Require().NotNil(p.Status)
				s.Equal(reservation.StatusApproved, *p.Status)
				s.Require().NotNil(p.Slot)
				s.True(p.Slot.Time().Equal(moved))
				s.Nil(p.IsRecurring)
				return nil
			})
		approved := *b
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).
			Return(approved.AsApproved().WithAt(moved).BuildView(), nil)

		body := map[string]any{"status": "approved", "reservationDateTime": "2025-06-01T20:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, "PUT", url, body, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		httptest.AssertMessage(s.T(), rec, "Rezervasyon güncellendi.")
		s.Equal("approved", res.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		body := map[string]any{"status": "done"}
		rec := httptest.PerformRequest(s.T(), s.router, "PUT", url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz güncelleme verisi.")
	})

	s.Run("error: 400 on a forbidden transition", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, b.ID, gomock.Any()).
			Return(errs.Mark(errors.New("cancelled is terminal"), errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, "PUT", url, map[string]any{"status": "approved"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz güncelleme verisi.")
	})

	s.Run("error: 403 for a venue the owner does not hold", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, b.ID, gomock.Any()).Return(errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, "PUT", url, map[string]any{"status": "approved"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.actor.Role = user.RoleAdmin
	id := uuid.New()
	url := "/api/reservation/delete/" + id.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, "DELETE", url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertMessage(s.T(), rec, "Rezervasyon silindi.")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(errs.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, "DELETE", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rezervasyon bulunamadı.")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(errors.New("boom"))
		rec := httptest.PerformRequest(s.T(), s.router, "DELETE", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Rezervasyon silinemedi.")
	})
}
