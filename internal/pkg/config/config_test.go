//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"halisaha-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "1d", want: 24 * time.Hour},
		{in: "90m", want: 90 * time.Minute},
		{in: " 2h ", want: 2 * time.Hour},
		{in: "0d", wantErr: true},
		{in: "-1h", wantErr: true},
		{in: "soon", wantErr: true},
		{in: "xd", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := config.ParseDuration(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildDSN(t *testing.T) {
	t.Run("discrete fields", func(t *testing.T) {
		cfg := config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "halisaha", SSLMode: "disable", TimeZone: "UTC"}
		assert.Equal(t, "postgres://u:p@db:5432/halisaha?sslmode=disable&timezone=UTC", cfg.BuildDSN())
	})

	t.Run("url overrides fields", func(t *testing.T) {
		cfg := config.DBConfig{URL: "postgres://x@y/z", Host: "ignored"}
		assert.Equal(t, "postgres://x@y/z", cfg.BuildDSN())
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads values from env file", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=9000\nDATABASE_URL=postgres://a@b/c\nJWT_SECRET=s3cret\n"), 0o600))

		t.Setenv("ENV_FILE", envFile)
		// godotenv never overrides variables that are already set
		t.Setenv("PORT", "")
		os.Unsetenv("PORT")
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		t.Setenv("DATABASE_URL", "")
		os.Unsetenv("DATABASE_URL")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, "postgres://a@b/c", cfg.DB.URL)
		assert.Equal(t, "7d", cfg.JWT.ExpiresIn)
		assert.Equal(t, 60*time.Second, cfg.Cache.VenueListTTL)
		assert.Equal(t, int64(10), cfg.RateLimit.ReservationUser)
		assert.True(t, cfg.Booking.ReleaseSlotOnDelete)
		assert.False(t, cfg.Policy.StrictVenueOwnership)
	})

	t.Run("missing env file is not an error", func(t *testing.T) {
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
		t.Setenv("PORT", "8080")
		t.Setenv("DATABASE_URL", "postgres://a@b/c")
		t.Setenv("JWT_SECRET", "x")

		_, err := config.LoadConfig()
		require.NoError(t, err)
	})

	t.Run("database settings are required", func(t *testing.T) {
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "x")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
