//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use-case tests. Within runs one
// transaction at a time and restores the previous state when the callback fails.
package memstore

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/review"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/usecase/shared"
	"halisaha-api/internal/usecase/venuestate"

	"github.com/google/uuid"
)

var ErrUnsupported = errors.New("memstore: operation not supported")

type state struct {
	users        map[uuid.UUID]*user.User
	venues       map[uuid.UUID]*venue.Venue
	reservations map[uuid.UUID]*reservation.Reservation
	reviews      map[uuid.UUID]*review.Review
	slots        map[uuid.UUID]slot.Set
}

func (s state) clone() state {
	c := state{
		users:        maps.Clone(s.users),
		venues:       maps.Clone(s.venues),
		reservations: maps.Clone(s.reservations),
		reviews:      maps.Clone(s.reviews),
		slots:        make(map[uuid.UUID]slot.Set, len(s.slots)),
	}
	for id, set := range s.slots {
		c.slots[id] = slot.NewSet(set.Slots()...)
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st state

	// SlotErr and RatingErr make every ledger or aggregator write fail while set.
	SlotErr   error
	RatingErr error
	// ReservationErr fails reservation writes.
	ReservationErr error
}

func New() *Store {
	return &Store{st: state{
		users:        map[uuid.UUID]*user.User{},
		venues:       map[uuid.UUID]*venue.Venue{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		reviews:      map[uuid.UUID]*review.Review{},
		slots:        map[uuid.UUID]slot.Set{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(context.Context, func(ctx context.Context, db pgstore.DBTX) error) error {
	return ErrUnsupported
}

func (s *Store) WithDB(context.Context, func(ctx context.Context, db pgstore.DBTX) error) error {
	return ErrUnsupported
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// Seeding and inspection helpers.

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = u
}

func (s *Store) PutVenue(v *venue.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.venues[v.ID()] = v
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.reservations[r.ID()] = r
}

func (s *Store) PutReview(r *review.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.reviews[r.ID()] = r
}

func (s *Store) PutSlot(venueID uuid.UUID, sl slot.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.st.slots[venueID]
	set.Add(sl)
	s.st.slots[venueID] = set
}

func (s *Store) BookedSlots(venueID uuid.UUID) []slot.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.slots[venueID].Slots()
}

func (s *Store) Venue(id uuid.UUID) *venue.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.venues[id]
}

func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.reservations[id]
}

func (s *Store) Review(id uuid.UUID) *review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.reviews[id]
}

func (s *Store) UserByEmail(email string) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.st.users {
		if u.Email().Value() == email {
			return u
		}
	}
	return nil
}

type memTx struct {
	s *Store
}

func (t *memTx) Users() shared.UserRepository               { return userRepo{t.s} }
func (t *memTx) Venues() shared.VenueRepository             { return venueRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *memTx) Reviews() shared.ReviewRepository           { return reviewRepo{t.s} }
func (t *memTx) Slots() shared.SlotRepository               { return slotRepo{t.s} }
func (t *memTx) RatingStats() shared.RatingStatsRepository  { return ratingRepo{t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *memTx) DB() pgstore.DBTX                           { return nil }

func notFound(entity string) error {
	return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
}

func fkViolated(entity string) error {
	return infra.WrapRepoErr(entity+" does not exist", nil, infra.KindForeignKeyViolated)
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, _ pgstore.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.s.st.users {
		if existing.Email() == u.Email() {
			return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.s.st.users[u.ID()] = u
	return u.ID(), nil
}

type venueRepo struct{ s *Store }

func (r venueRepo) Create(_ context.Context, _ pgstore.DBTX, v *venue.Venue) (uuid.UUID, error) {
	if _, ok := r.s.st.users[v.OwnerID()]; !ok {
		return uuid.Nil, fkViolated("owner")
	}
	r.s.st.venues[v.ID()] = v
	return v.ID(), nil
}

func (r venueRepo) Update(_ context.Context, _ pgstore.DBTX, v *venue.Venue) error {
	current, ok := r.s.st.venues[v.ID()]
	if !ok {
		return notFound("venue")
	}
	// rating and review count are owned by the aggregator
	r.s.st.venues[v.ID()] = venue.ReconstructVenue(v.ID(), v.OwnerID(), v.Slug(), v.Attributes(),
		current.Rating(), current.ReviewCount(), v.CreatedAt(), v.UpdatedAt())
	return nil
}

func (r venueRepo) Delete(_ context.Context, _ pgstore.DBTX, id uuid.UUID) error {
	if _, ok := r.s.st.venues[id]; !ok {
		return notFound("venue")
	}
	delete(r.s.st.venues, id)
	delete(r.s.st.slots, id)
	maps.DeleteFunc(r.s.st.reservations, func(_ uuid.UUID, res *reservation.Reservation) bool { return res.VenueID() == id })
	maps.DeleteFunc(r.s.st.reviews, func(_ uuid.UUID, rv *review.Review) bool { return rv.VenueID() == id })
	return nil
}

func (r venueRepo) ListIDs(context.Context, pgstore.DBTX) ([]uuid.UUID, error) {
	ids := slices.Collect(maps.Keys(r.s.st.venues))
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return ids, nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ pgstore.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.s.ReservationErr != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", r.s.ReservationErr)
	}
	if _, ok := r.s.st.venues[res.VenueID()]; !ok {
		return uuid.Nil, fkViolated("venue")
	}
	if _, ok := r.s.st.users[res.UserID()]; !ok {
		return uuid.Nil, fkViolated("user")
	}
	r.s.st.reservations[res.ID()] = res
	return res.ID(), nil
}

func (r reservationRepo) Update(_ context.Context, _ pgstore.DBTX, res *reservation.Reservation) error {
	if r.s.ReservationErr != nil {
		return infra.WrapRepoErr("failed to update reservation", r.s.ReservationErr)
	}
	if _, ok := r.s.st.reservations[res.ID()]; !ok {
		return notFound("reservation")
	}
	r.s.st.reservations[res.ID()] = res
	return nil
}

func (r reservationRepo) Delete(_ context.Context, _ pgstore.DBTX, id uuid.UUID) error {
	if _, ok := r.s.st.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(r.s.st.reservations, id)
	return nil
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, _ pgstore.DBTX, rv *review.Review) (uuid.UUID, error) {
	if _, ok := r.s.st.venues[rv.VenueID()]; !ok {
		return uuid.Nil, fkViolated("venue")
	}
	if _, ok := r.s.st.users[rv.UserID()]; !ok {
		return uuid.Nil, fkViolated("user")
	}
	r.s.st.reviews[rv.ID()] = rv
	return rv.ID(), nil
}

func (r reviewRepo) Update(_ context.Context, _ pgstore.DBTX, rv *review.Review) error {
	if _, ok := r.s.st.reviews[rv.ID()]; !ok {
		return notFound("review")
	}
	r.s.st.reviews[rv.ID()] = rv
	return nil
}

func (r reviewRepo) Delete(_ context.Context, _ pgstore.DBTX, id uuid.UUID) error {
	if _, ok := r.s.st.reviews[id]; !ok {
		return notFound("review")
	}
	delete(r.s.st.reviews, id)
	return nil
}

type slotRepo struct{ s *Store }

func (r slotRepo) Add(_ context.Context, _ pgstore.DBTX, venueID uuid.UUID, sl slot.Slot) (bool, error) {
	if r.s.SlotErr != nil {
		return false, infra.WrapRepoErr("failed to add booked slot", r.s.SlotErr)
	}
	if _, ok := r.s.st.venues[venueID]; !ok {
		return false, fkViolated("venue")
	}
	set := r.s.st.slots[venueID]
	added := set.Add(sl)
	r.s.st.slots[venueID] = set
	return added, nil
}

func (r slotRepo) Remove(_ context.Context, _ pgstore.DBTX, venueID uuid.UUID, sl slot.Slot) (bool, error) {
	if r.s.SlotErr != nil {
		return false, infra.WrapRepoErr("failed to remove booked slot", r.s.SlotErr)
	}
	set, ok := r.s.st.slots[venueID]
	if !ok {
		return false, nil
	}
	removed := set.Remove(sl)
	r.s.st.slots[venueID] = set
	return removed, nil
}

func (r slotRepo) RestoreActive(context.Context, pgstore.DBTX) (int64, error) {
	if r.s.SlotErr != nil {
		return 0, infra.WrapRepoErr("failed to restore active slots", r.s.SlotErr)
	}
	var n int64
	for _, res := range r.s.st.reservations {
		if !res.IsActive() {
			continue
		}
		set := r.s.st.slots[res.VenueID()]
		if set.Add(res.Slot()) {
			n++
		}
		r.s.st.slots[res.VenueID()] = set
	}
	return n, nil
}

func (r slotRepo) PruneOrphans(context.Context, pgstore.DBTX) (int64, error) {
	if r.s.SlotErr != nil {
		return 0, infra.WrapRepoErr("failed to prune orphan slots", r.s.SlotErr)
	}
	held := map[uuid.UUID]slot.Set{}
	for _, res := range r.s.st.reservations {
		set := held[res.VenueID()]
		set.Add(res.Slot())
		held[res.VenueID()] = set
	}
	var n int64
	for venueID, set := range r.s.st.slots {
		for _, sl := range set.Slots() {
			if !held[venueID].Contains(sl) {
				set.Remove(sl)
				n++
			}
		}
		r.s.st.slots[venueID] = set
	}
	return n, nil
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) LockVenue(_ context.Context, _ pgstore.DBTX, venueID uuid.UUID) error {
	if r.s.RatingErr != nil {
		return infra.WrapRepoErr("failed to lock venue", r.s.RatingErr)
	}
	if _, ok := r.s.st.venues[venueID]; !ok {
		return notFound("venue")
	}
	return nil
}

func (r ratingRepo) Aggregate(_ context.Context, _ pgstore.DBTX, venueID uuid.UUID) (int64, int64, error) {
	var count, sum int64
	for _, rv := range r.s.st.reviews {
		if rv.VenueID() == venueID {
			count++
			sum += int64(rv.Rating().Value())
		}
	}
	return count, sum, nil
}

func (r ratingRepo) Update(_ context.Context, _ pgstore.DBTX, venueID uuid.UUID, rating float64, count int) error {
	v, ok := r.s.st.venues[venueID]
	if !ok {
		return notFound("venue")
	}
	r.s.st.venues[venueID] = venue.ReconstructVenue(v.ID(), v.OwnerID(), v.Slug(), v.Attributes(),
		rating, count, v.CreatedAt(), v.UpdatedAt())
	return nil
}

type reads struct {
	s    *Store
	lock bool
}

func (r *reads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	defer r.guard()()
	for _, u := range r.s.st.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r *reads) VenueByID(_ context.Context, id uuid.UUID) (*venue.Venue, error) {
	defer r.guard()()
	v, ok := r.s.st.venues[id]
	if !ok {
		return nil, notFound("venue")
	}
	return v, nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	defer r.guard()()
	res, ok := r.s.st.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	snap := &shared.ReservationSnapshot{Reservation: res}
	if v, ok := r.s.st.venues[res.VenueID()]; ok {
		snap.VenueOwnerID = v.OwnerID()
	}
	return snap, nil
}

func (r *reads) ReviewByID(_ context.Context, id uuid.UUID) (*review.Review, error) {
	defer r.guard()()
	rv, ok := r.s.st.reviews[id]
	if !ok {
		return nil, notFound("review")
	}
	return rv, nil
}

// Publisher records published tasks.
type Publisher struct {
	mu    sync.Mutex
	tasks []venuestate.Task
	Err   error
}

func (p *Publisher) Publish(_ context.Context, task venuestate.Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.tasks = append(p.tasks, task)
	return nil
}

func (p *Publisher) Tasks() []venuestate.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.tasks)
}

// Invalidator counts venue list invalidations.
type Invalidator struct {
	mu    sync.Mutex
	calls int
}

func (i *Invalidator) InvalidateVenueList(context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.calls++
	return nil
}

func (i *Invalidator) Calls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.calls
}
