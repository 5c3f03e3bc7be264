//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/api"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/httptest"
	commandsmock "halisaha-api/tests/mock/commands"
	queriesmock "halisaha-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	actor        policy.Actor
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.actor = policy.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	h := api.NewUserHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/api/users", fakeAuth(&s.actor))
	g.POST("", h.Create)
	g.GET("", h.List)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	owner := builder.NewUserBuilder().AsOwner().WithPhone("05551112233")
	reqBody := map[string]any{
		"name":     owner.Name,
		"email":    owner.Email,
		"password": "secret1",
		"role":     "OWNER",
		"phone":    "05551112233",
	}

	s.Run("success: 201 without the password hash", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateUserInput{
			Name:     owner.Name,
			Email:    owner.Email,
			Password: "secret1",
			Role:     user.RoleOwner,
			Phone:    owner.Phone,
		}).Return(owner.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", reqBody, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertMessage(s.T(), rec, "Kullanıcı eklendi.")
		s.Equal("OWNER", body["role"])
		s.NotContains(body, "passwordHash")
		s.NotContains(body, "password")
	})

	s.Run("error: 400 on unknown role", func() {
		body := map[string]any{"name": "x", "email": "x@example.com", "password": "secret1", "role": "ROOT"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz kullanıcı verisi.")
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(uuid.Nil, errs.ErrEmailTaken)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email zaten kayıtlı.")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	views := []*queries.UserView{
		builder.NewUserBuilder().BuildView(),
		builder.NewUserBuilder().AsAdmin().WithEmail("admin@example.com").BuildView(),
	}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users", nil, "token")

	var body []resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("ADMIN", body[1].Role)
}
