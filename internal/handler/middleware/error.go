package middleware

import (
	"log/slog"
	"net/http"

	"halisaha-api/internal/handler/dto/response"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Bir hata oluştu."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// newest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, response.Fail(internalErrorMessage, nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					slog.Any("error", rec),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.Any("stack", errs.ExtractStackLines(err, 8)))

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Fail(internalErrorMessage, nil))
			}
		}()
		c.Next()
	}
}
