//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "OWNER", claims.Role)
}

func TestService_PayloadUsesIDKey(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour, nil)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleUser)
	require.NoError(t, err)

	parsed := gojwt.MapClaims{}
	_, err = gojwt.ParseWithClaims(token, parsed, func(*gojwt.Token) (any, error) { return []byte(secret), nil })
	require.NoError(t, err)
	assert.Equal(t, userID.String(), parsed["id"])
	assert.Equal(t, "USER", parsed["role"])
}

func TestService_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Minute, clk)

	token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_Invalid(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour, nil)
	other := jwt.NewService("another-secret", time.Hour, nil)

	token, err := other.GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
