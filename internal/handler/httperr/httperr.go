package httperr

import (
	"errors"

	"halisaha-api/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	response.Envelope
}

// AbortWithError keeps err on the gin context for the logging middleware and writes the
// failure envelope. A nil err is replaced by msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Envelope: response.Fail(msg, detail)}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
