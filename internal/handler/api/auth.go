package api

import (
	"log/slog"
	"net/http"

	reqdto "halisaha-api/internal/handler/dto/request"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds   commands.AuthCommands
	logger *slog.Logger
}

func NewAuthHandler(cmds commands.AuthCommands, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{cmds: cmds, logger: logger}
}

// @Summary Register
// @Description Create a USER account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.Envelope{data=resdto.CreatedUserResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Failure 429 {object} resdto.Envelope
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz kayıt verisi.")
		return
	}

	userID, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz kayıt verisi."})
		return
	}

	h.logger.Info("user registered", slog.String("user_id", userID.String()))
	c.JSON(http.StatusCreated, resdto.OK("Kayıt başarılı.", resdto.CreatedUserResponse{UserID: userID.String()}))
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope{data=resdto.LoginResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 401 {object} resdto.Envelope
// @Failure 429 {object} resdto.Envelope
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz giriş verisi.")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Geçersiz giriş verisi.", err.Error())
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials)
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz giriş verisi."})
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Giriş başarılı.", resdto.LoginResponse{
		User:  resdto.FromUserView(result.User),
		Token: result.Token,
	}))
}
