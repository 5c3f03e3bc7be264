package api

import (
	"net/http"

	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgGenericFailure = "Bir hata oluştu."
	msgForbidden      = "Bu işlemi yapmaya yetkiniz yok."
	msgUnauthorized   = "Token bulunamadı."
	msgBadCredentials = "Geçersiz email veya şifre."
	msgEmailTaken     = "Email zaten kayıtlı."
	msgConflict       = "Kayıt zaten mevcut."
	msgInvalidID      = "Geçersiz ID."

	msgUserNotFound        = "Kullanıcı bulunamadı."
	msgVenueNotFound       = "Halı saha bulunamadı."
	msgReservationNotFound = "Rezervasyon bulunamadı."
	msgReviewNotFound      = "Yorum bulunamadı."
)

// opMessages are the per-endpoint texts; empty fields fall back to the generic ones.
type opMessages struct {
	invalid  string
	notFound string
	failed   string
}

// abortWithMapped translates use-case sentinels into status codes and messages.
func abortWithMapped(c *gin.Context, err error, m opMessages) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, fallback(m.invalid, msgGenericFailure), err.Error())
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden, nil)
	case errs.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgBadCredentials, nil)
	case errs.Is(err, errs.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, msgEmailTaken, nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, msgConflict, nil)
	case errs.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgUserNotFound, nil)
	case errs.Is(err, errs.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgVenueNotFound, nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, fallback(m.notFound, msgReservationNotFound), nil)
	case errs.Is(err, errs.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, fallback(m.notFound, msgReviewNotFound), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback(m.failed, msgGenericFailure), nil)
	}
}

func abortWithBindError(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, reqdto.Details(err))
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
