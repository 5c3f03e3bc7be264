//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/infra/pgstore"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text behind every fixture user's hash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db pgstore.DBTX, email string, role user.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name, _, _ := strings.Cut(email, "@")

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
		userID, name, email, testPasswordHash, role.String())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestVenue(t *testing.T, db pgstore.DBTX, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO venues
		(id, owner_id, name, slug, location, latitude, longitude, phone, description,
		 price_per_hour, start_hour, end_hour, size, surface, max_players)
		VALUES ($1, $2, $3, $4, 'Kadıköy, İstanbul', 40.99, 29.03, '05321234567', 'Kapalı saha',
		 1200, '09:00', '23:00', '30x50', 'suni çim', 14)`,
		venueID, ownerID, name, slug.Make(name)+"-"+venueID.String()[:8])
	require.NoError(t, err)

	return venueID
}

func CreateTestReservation(t *testing.T, db pgstore.DBTX, userID, venueID uuid.UUID, at time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations (id, user_id, venue_id, reservation_date_time, status)
		VALUES ($1, $2, $3, $4, $5)`, id, userID, venueID, at, status)
	require.NoError(t, err)

	return id
}

func CreateTestReview(t *testing.T, db pgstore.DBTX, userID, venueID uuid.UUID, rating int, comment string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reviews (id, user_id, venue_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)`, id, userID, venueID, rating, comment)
	require.NoError(t, err)

	return id
}

// BookedSlots reads a venue's booked set straight from the table, oldest first.
func BookedSlots(t *testing.T, db pgstore.DBTX, venueID uuid.UUID) []time.Time {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT slot_at FROM venue_booked_slots WHERE venue_id = $1 ORDER BY slot_at", venueID)
	require.NoError(t, err)
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var at time.Time
		require.NoError(t, rows.Scan(&at))
		out = append(out, at.UTC())
	}
	require.NoError(t, rows.Err())
	return out
}

func VenueRating(t *testing.T, db pgstore.DBTX, venueID uuid.UUID) (float64, int) {
	t.Helper()

	var (
		rating float64
		count  int
	)
	err := db.QueryRow(context.Background(),
		"SELECT rating, review_count FROM venues WHERE id = $1", venueID).Scan(&rating, &count)
	require.NoError(t, err)
	return rating, count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
