package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errRoleDenied   = errors.New("role not allowed")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Token bulunamadı.", nil)
			return
		}

		actor, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Geçersiz token.", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok || !slices.Contains(allowed, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleDenied, "Bu işlemi yapmaya yetkiniz yok.", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetActor(c *gin.Context, a policy.Actor) {
	c.Set(ctxUserIDKey, a.ID)
	c.Set(ctxUserRoleKey, a.Role)
}

// Actor returns the authenticated caller; ok is false on unauthenticated routes.
func Actor(c *gin.Context) (policy.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return policy.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: id, Role: role}, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
