//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/jwt"
	"halisaha-api/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "validator-secret"

func TestTokenValidator_Authenticate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	validator := usecase.NewTokenValidator(svc)

	t.Run("valid token yields the actor", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)

		actor, err := validator.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, id, actor.ID)
		assert.Equal(t, user.RoleAdmin, actor.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		expired := usecase.NewTokenValidator(jwt.NewService(secret, time.Hour, clock.NewMockClock(clk.Now().Add(2*time.Hour))))
		_, err = expired.Authenticate(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		token := sign(t, jwt.Claims{UserID: uuid.New(), Role: "ROOT"}, clk.Now())

		_, err := validator.Authenticate(token)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("claims without a user id", func(t *testing.T) {
		token := sign(t, jwt.Claims{Role: "USER"}, clk.Now())

		_, err := validator.Authenticate(token)
		assert.ErrorIs(t, err, usecase.ErrTokenWithoutUser)
	})
}

func sign(t *testing.T, claims jwt.Claims, now time.Time) string {
	t.Helper()
	claims.ExpiresAt = gojwt.NewNumericDate(now.Add(time.Hour))
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
