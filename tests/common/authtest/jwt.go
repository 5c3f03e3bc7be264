//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	ttl, err := h.cfg.TokenTTL()
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, ttl, nil).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token that expired an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	token, err := jwt.NewService(h.cfg.Secret, time.Hour, issued).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour, nil).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
