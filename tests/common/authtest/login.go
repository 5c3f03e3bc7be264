//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/tests/common/dbtest"
	"halisaha-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// LoginUser returns the bearer token from a successful /api/login.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := gjson.GetBytes(w.Body.Bytes(), "data.token").String()
	require.NotEmpty(t, token, "token missing from login response")
	return token
}

func CreateAndLogin(t *testing.T, db pgstore.DBTX, router *gin.Engine, email string, role user.Role) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
