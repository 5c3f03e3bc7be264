//go:build unit

package password_test

import (
	"testing"

	"halisaha-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasherWithCost(bcrypt.MinCost)

	hashed, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hashed)

	assert.NoError(t, h.Compare(hashed, "secret1"))
	assert.ErrorIs(t, h.Compare(hashed, "secret2"), password.ErrMismatch)
	assert.ErrorIs(t, h.Compare("", "secret1"), password.ErrInvalidPassword)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestNewHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	h := password.NewHasherWithCost(100)
	hashed, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}
