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

type VenueHandler struct {
	cmds commands.VenueCommands
	q    queries.VenueQueries
}

func NewVenueHandler(cmds commands.VenueCommands, q queries.VenueQueries) *VenueHandler {
	return &VenueHandler{cmds: cmds, q: q}
}

// @Summary Create venue
// @Description Owners create their own venues; admins may pass ownerId
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Create venue request"
// @Success 201 {object} resdto.Envelope{data=resdto.VenueResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Router /api/halisaha/create [post]
func (h *VenueHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz halı saha verisi.")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz halı saha verisi.", failed: "Halı saha oluşturulamadı."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Halı saha başarıyla oluşturuldu.", resdto.FromVenueView(view)))
}

// @Summary List venues
// @Description Public, served from the cache when warm
// @Tags venues
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.VenueResponse}
// @Router /api/halisaha [get]
func (h *VenueHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Sahalara erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromVenueViews(views)))
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.Envelope{data=resdto.VenueResponse}
// @Failure 404 {object} resdto.Envelope
// @Router /api/halisaha/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Halı sahaya erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromVenueView(view)))
}

// @Summary Venue rating stats
// @Description Review count, average and per-star distribution
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.Envelope{data=resdto.RatingStatsResponse}
// @Failure 404 {object} resdto.Envelope
// @Router /api/halisaha/{id}/rating-stats [get]
func (h *VenueHandler) RatingStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stats, err := h.q.RatingStats(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromRatingStats(stats)))
}

// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Update venue request"
// @Success 200 {object} resdto.Envelope{data=resdto.VenueResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/halisaha/update/{id} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Geçersiz güncelleme verisi.")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToPatch()); err != nil {
		abortWithMapped(c, err, opMessages{invalid: "Geçersiz güncelleme verisi.", failed: "Güncelleme sırasında hata oluştu."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Halı saha güncellendi.", resdto.FromVenueView(view)))
}

// @Summary Delete venue
// @Description Also removes the venue's reservations, reviews and booked slots
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/halisaha/delete/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
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
		abortWithMapped(c, err, opMessages{failed: "Silme sırasında hata oluştu."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Halı saha silindi.", nil))
}
