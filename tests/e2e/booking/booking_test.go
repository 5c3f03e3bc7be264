//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/tests/common/authtest"
	"halisaha-api/tests/common/builder"
	"halisaha-api/tests/common/dbtest"
	"halisaha-api/tests/common/httptest"
	"halisaha-api/tests/common/testutil"
	"halisaha-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

const (
	venueCreateURL       = "/api/halisaha/create"
	venueURL             = "/api/halisaha/"
	reservationCreateURL = "/api/reservation/create"
	reservationURL       = "/api/reservation/"
)

var (
	evening = time.Date(2030, 6, 1, 18, 0, 0, 0, time.UTC)
	later   = time.Date(2030, 6, 1, 20, 0, 0, 0, time.UTC)
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type actors struct {
	ownerID    uuid.UUID
	owner      string
	user       string
	otherUser  string
	otherOwner string
	admin      string
}

func (s *BookingSuite) login() actors {
	t := s.T()
	a := actors{}
	a.ownerID = dbtest.CreateTestUser(t, s.DB, "sahip@example.com", user.RoleOwner)
	a.owner = authtest.LoginUser(t, s.Router, "sahip@example.com", dbtest.TestPassword)
	a.user = authtest.CreateAndLogin(t, s.DB, s.Router, "oyuncu@example.com", user.RoleUser)
	a.otherUser = authtest.CreateAndLogin(t, s.DB, s.Router, "rakip@example.com", user.RoleUser)
	a.otherOwner = authtest.CreateAndLogin(t, s.DB, s.Router, "baska-sahip@example.com", user.RoleOwner)
	a.admin = authtest.CreateAndLogin(t, s.DB, s.Router, "yonetici@example.com", user.RoleAdmin)
	return a
}

func (s *BookingSuite) createVenue(token string) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, venueCreateURL,
		builder.NewVenueBuilder().BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uuid.MustParse(gjson.GetBytes(w.Body.Bytes(), "data.id").String())
}

func (s *BookingSuite) book(token string, venueID uuid.UUID, at time.Time) uuid.UUID {
	t := s.T()
	body := builder.NewReservationBuilder().WithVenueID(venueID).WithAt(at).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationCreateURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uuid.MustParse(gjson.GetBytes(w.Body.Bytes(), "data.id").String())
}

// =============================================================================
// Venues
// =============================================================================

func (s *BookingSuite) TestVenueCreation() {
	s.Run("owner creates a venue with empty derived state", func() {
		t := s.T()
		a := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, venueCreateURL,
			builder.NewVenueBuilder().BuildCreateRequestDTO(), a.owner)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data := gjson.GetBytes(w.Body.Bytes(), "data")
		require.Equal(t, a.ownerID.String(), data.Get("ownerId").String())
		require.True(t, strings.HasPrefix(data.Get("slug").String(), "yildiz-hali-saha-"), data.Get("slug").String())
		require.Equal(t, float64(0), data.Get("rating").Float())
		require.Equal(t, int64(0), data.Get("reviewCount").Int())
		require.True(t, data.Get("bookedSlots").IsArray())
		require.Empty(t, data.Get("bookedSlots").Array())
	})

	s.Run("same name gets a distinct slug", func() {
		t := s.T()
		a := s.login()
		first := s.createVenue(a.owner)
		second := s.createVenue(a.owner)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, venueURL+first.String(), nil, "")
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, venueURL+second.String(), nil, "")
		require.NotEqual(t,
			gjson.GetBytes(w1.Body.Bytes(), "data.slug").String(),
			gjson.GetBytes(w2.Body.Bytes(), "data.slug").String())
	})

	s.Run("plain users cannot create venues", func() {
		t := s.T()
		a := s.login()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, venueCreateURL,
			builder.NewVenueBuilder().BuildCreateRequestDTO(), a.user)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
	})

	s.Run("venue list is public", func() {
		t := s.T()
		a := s.login()
		s.createVenue(a.owner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/halisaha", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Len(t, gjson.GetBytes(w.Body.Bytes(), "data").Array(), 1)
	})
}

// =============================================================================
// Reservations and the booked slot set
// =============================================================================

func (s *BookingSuite) TestSlotLedger() {
	s.Run("creating a reservation books its slot", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)

		s.book(a.user, venueID, evening)

		require.Equal(t, []time.Time{evening}, dbtest.BookedSlots(t, s.DB, venueID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, venueURL+venueID.String(), nil, "")
		slots := gjson.GetBytes(w.Body.Bytes(), "data.bookedSlots").Array()
		require.Len(t, slots, 1)
		require.Equal(t, "2030-06-01T18:00:00Z", slots[0].String())
	})

	s.Run("two reservations on one slot keep a single entry", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)

		s.book(a.user, venueID, evening)
		s.book(a.otherUser, venueID, evening)

		require.Equal(t, []time.Time{evening}, dbtest.BookedSlots(t, s.DB, venueID))
	})

	s.Run("moving a reservation moves its slot", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		id := s.book(a.user, venueID, evening)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationURL+"update/"+id.String(),
			map[string]any{"reservationDateTime": later.Format(time.RFC3339)}, a.user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, []time.Time{later}, dbtest.BookedSlots(t, s.DB, venueID))
	})

	s.Run("cancelling frees the slot and is terminal", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		id := s.book(a.user, venueID, evening)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationURL+id.String(),
			map[string]any{"status": "cancelled"}, a.user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "cancelled", gjson.GetBytes(w.Body.Bytes(), "data.status").String())
		require.Empty(t, dbtest.BookedSlots(t, s.DB, venueID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, reservationURL+id.String(),
			map[string]any{"status": "approved"}, a.owner)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Geçersiz güncelleme verisi.")
	})

	s.Run("owner approval records who changed it", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		id := s.book(a.user, venueID, evening)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationURL+id.String(),
			map[string]any{"status": "approved"}, a.owner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, a.ownerID.String(), gjson.GetBytes(w.Body.Bytes(), "data.lastUpdatedById").String())
		require.Equal(t, []time.Time{evening}, dbtest.BookedSlots(t, s.DB, venueID))
	})

	s.Run("admin delete releases an active slot", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		id := s.book(a.user, venueID, evening)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL+"delete/"+id.String(), nil, a.user)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL+"delete/"+id.String(), nil, a.admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Empty(t, dbtest.BookedSlots(t, s.DB, venueID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL+id.String(), nil, a.admin)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Rezervasyon bulunamadı.")
	})

	s.Run("orphan pruning keeps the slot of a reservation created cancelled", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		body := testutil.Payload(t,
			builder.NewReservationBuilder().WithVenueID(venueID).WithAt(evening).BuildCreateRequestDTO(),
			testutil.Set("status", "cancelled"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationCreateURL, body, a.user)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		s.book(a.user, venueID, later)
		// a row deleted behind the ledger's back leaves its slot orphaned
		_, err := s.DB.Exec(context.Background(),
			"DELETE FROM reservations WHERE venue_id = $1 AND reservation_date_time = $2", venueID, later)
		require.NoError(t, err)

		pruned, err := pgstore.New().PruneOrphanSlots(context.Background(), s.DB)
		require.NoError(t, err)
		require.Equal(t, int64(1), pruned)
		require.Equal(t, []time.Time{evening}, dbtest.BookedSlots(t, s.DB, venueID))
	})

	s.Run("booking an unknown venue is a 404", func() {
		t := s.T()
		a := s.login()
		body := builder.NewReservationBuilder().WithAt(evening).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationCreateURL, body, a.user)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Halı saha bulunamadı.")
	})
}

// =============================================================================
// Visibility
// =============================================================================

func (s *BookingSuite) TestReservationVisibility() {
	s.Run("list is scoped by role", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		s.book(a.user, venueID, evening)
		s.book(a.otherUser, venueID, later)

		count := func(token string) int {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservation", nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			return len(gjson.GetBytes(w.Body.Bytes(), "data").Array())
		}

		require.Equal(t, 1, count(a.user))
		require.Equal(t, 2, count(a.owner))
		require.Equal(t, 0, count(a.otherOwner))
		require.Equal(t, 2, count(a.admin))
	})

	s.Run("strangers cannot read a reservation", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		id := s.book(a.user, venueID, evening)

		for _, token := range []string{a.otherUser, a.otherOwner} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL+id.String(), nil, token)
			httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL+id.String(), nil, a.owner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, venueID.String(), gjson.GetBytes(w.Body.Bytes(), "data.haliSaha.id").String())
	})

	s.Run("an owner booking at someone else's venue can read it back", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)

		id := s.book(a.otherOwner, venueID, evening)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL+id.String(), nil, a.otherOwner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservation", nil, a.otherOwner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Len(t, gjson.GetBytes(w.Body.Bytes(), "data").Array(), 1)
	})

	s.Run("users cannot book for someone else", func() {
		t := s.T()
		a := s.login()
		venueID := s.createVenue(a.owner)
		victim := dbtest.CreateTestUser(t, s.DB, "kurban@example.com", user.RoleUser)

		body := builder.NewReservationBuilder().WithVenueID(venueID).WithAt(evening).BuildCreateRequestDTO()
		body.UserID = &victim
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationCreateURL, body, a.user)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Bu işlemi yapmaya yetkiniz yok.")
		require.Empty(t, dbtest.BookedSlots(t, s.DB, venueID))
	})
}
