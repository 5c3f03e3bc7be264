//go:build unit

package api_test

import (
	"halisaha-api/internal/domain/policy"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	return gin.New()
}

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as *actor.
func fakeAuth(actor *policy.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, *actor)
		}
		c.Next()
	}
}
