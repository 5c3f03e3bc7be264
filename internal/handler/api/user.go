package api

import (
	"net/http"

	reqdto "halisaha-api/internal/handler/dto/request"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/handler/middleware"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Add user
// @Description Admin-only account creation with an explicit role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Router /api/users/add [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz kullanıcı verisi.")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz kullanıcı verisi.", failed: "Kullanıcı eklenemedi."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Kullanıcı eklendi.", resdto.FromUserView(view)))
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.UserResponse}
// @Failure 401 {object} resdto.Envelope
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Kullanıcılar listelenemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromUserViews(views)))
}
