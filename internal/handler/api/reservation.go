package api

import (
	"log/slog"
	"net/http"

	reqdto "halisaha-api/internal/handler/dto/request"
	resdto "halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/handler/middleware"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidReservation = "Geçersiz rezervasyon verisi."
	msgInvalidUpdate      = "Geçersiz güncelleme verisi."
	msgReservationCreated = "Rezervasyon başarıyla oluşturuldu."
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Books a slot; a non-cancelled reservation adds the slot to the venue's booked set
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Failure 429 {object} resdto.Envelope
// @Router /api/reservation/create [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, msgInvalidReservation)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidReservation, err.Error())
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		abortWithMapped(c, err, opMessages{invalid: msgInvalidReservation, failed: "Rezervasyon oluşturulamadı."})
		return
	}
	// the reservation is committed at this point, so a failed read-back still answers 201
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		slog.Warn("created reservation could not be read back",
			slog.String("reservation_id", id.String()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusCreated, resdto.OK(msgReservationCreated, gin.H{"id": id.String()}))
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(msgReservationCreated, resdto.FromReservationView(view)))
}

// @Summary List reservations
// @Description Users see their own, owners see their venues', admins see all
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.ReservationResponse}
// @Failure 401 {object} resdto.Envelope
// @Router /api/reservation [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	views, err := h.q.List(c.Request.Context(), actor)
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Rezervasyonlara erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReservationViews(views)))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/reservation/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithMapped(c, err, opMessages{failed: "Rezervasyona erişilemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReservationView(view)))
}

// @Summary Update reservation
// @Description Status changes and slot moves keep the venue's booked set in line
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update reservation request"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/reservation/{id} [put]
// @Router /api/reservation/update/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.Actor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, msgInvalidUpdate)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidUpdate, err.Error())
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, p); err != nil {
		abortWithMapped(c, err, opMessages{invalid: msgInvalidUpdate, failed: "Rezervasyon güncellenemedi."})
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithMapped(c, err, opMessages{})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Rezervasyon güncellendi.", resdto.FromReservationView(view)))
}

// @Summary Delete reservation
// @Description Admin only
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/reservation/delete/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
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
		abortWithMapped(c, err, opMessages{failed: "Rezervasyon silinemedi."})
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Rezervasyon silindi.", nil))
}
