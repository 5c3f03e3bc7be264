package api

import (
	"net/http"

	reqdto "halisaha-api/internal/handler/dto/request"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/handler/middleware"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Rates a venue; the venue's rating and review count follow
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.Envelope{data=resdto.ReviewResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 401 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/review/create [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz yorum verisi.")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz yorum verisi.", failed: "Yorum oluşturulamadı."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Yorum başarıyla oluşturuldu.", resdto.FromReviewView(view)))
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param haliSahaId query string false "Only reviews of this venue"
// @Success 200 {object} resdto.Envelope{data=[]resdto.ReviewResponse}
// @Failure 400 {object} resdto.Envelope
// @Router /api/review [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var venueID *uuid.UUID
	if raw := c.Query("haliSahaId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
			return
		}
		venueID = &id
	}

	views, err := h.q.List(c.Request.Context(), venueID)
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Yorumlara erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReviewViews(views)))
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReviewResponse}
// @Failure 404 {object} resdto.Envelope
// @Router /api/review/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Yoruma erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReviewView(view)))
}

// @Summary Update review
// @Description Authors edit their own reviews; admins may edit any
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.Envelope{data=resdto.ReviewResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/review/update/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz güncelleme verisi.")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToPatch()); err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz güncelleme verisi.", failed: "Yorum güncellenemedi."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Yorum başarıyla güncellendi.", resdto.FromReviewView(view)))
}

// @Summary Delete review
// @Description Authors delete their own reviews; admins may delete any
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/review/delete/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		abortWithMapped(c, err, opMessages{notFound: "Silinecek yorum bulunamadı.", failed: "Yorum silinemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Yorum silindi.", nil))
}
