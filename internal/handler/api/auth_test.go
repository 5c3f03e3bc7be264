//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"halisaha-api/internal/domain/auth"
	"halisaha-api/internal/handler/api"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/httptest"
	"halisaha-api/tests/common/testutil"
	commandsmock "halisaha-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)

	h := api.NewAuthHandler(s.mockCommands, testutil.DiscardLogger())
	s.router.POST("/api/register", h.Register)
	s.router.POST("/api/login", h.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	u := builder.NewUserBuilder()
	reqBody := u.BuildRegisterRequestDTO("secret1")

	s.Run("success: 201 with the new user id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Name: u.Name, Email: u.Email, Password: "secret1",
		}).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/register", reqBody, "")

		var body resdto.CreatedUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertMessage(s.T(), rec, "Kayıt başarılı.")
		s.Equal(id.String(), body.UserID)
	})

	s.Run("error: 400 on invalid payloads", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Without("name")},
			{name: "malformed email", mutate: testutil.Set("email", "not-an-email")},
			{name: "short password", mutate: testutil.Set("password", "12345")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Payload(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/register", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz kayıt verisi.")
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/register", "{", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errors.New("duplicate"), errs.ErrEmailTaken))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/register", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email zaten kayıtlı.")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/register", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Bir hata oluştu.")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	u := builder.NewUserBuilder()
	reqBody := u.BuildLoginRequestDTO("secret1")

	s.Run("success: 200 with user and token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds auth.Credentials) (*commands.LoginResult, error) {
				s.Equal(u.Email, creds.Email().Value())
				return &commands.LoginResult{User: u.BuildView(), Token: "signed.jwt.token"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/login", reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertMessage(s.T(), rec, "Giriş başarılı.")
		s.Equal("signed.jwt.token", body.Token)
		s.Require().NotNil(body.User)
		s.Equal(u.ID.String(), body.User.ID)
		s.Equal("USER", body.User.Role)
	})

	s.Run("error: 400 when password is missing", func() {
		body := testutil.Payload(s.T(), reqBody, testutil.Without("password"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Geçersiz giriş verisi.")
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/login", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Geçersiz email veya şifre.")
	})
}
