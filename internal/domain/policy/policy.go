// Package policy holds the role and ownership rules for every protected operation.
// Each check switches over the closed user.Role set; unknown roles are denied.
package policy

import (
	"errors"

	"halisaha-api/internal/domain/user"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("forbidden")

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// ReservationOwnership is what a reservation check needs to know about the target.
type ReservationOwnership struct {
	UserID       uuid.UUID
	VenueOwnerID uuid.UUID
}

type ReservationScope int

const (
	ScopeOwn ReservationScope = iota + 1
	// bookings made by the actor plus every booking at venues they own
	ScopeOwnAndVenues
	ScopeAll
)

func CanCreateVenue(a Actor) bool {
	switch a.Role {
	case user.RoleOwner, user.RoleAdmin:
		return true
	case user.RoleUser:
		return false
	default:
		return false
	}
}

// CanModifyVenue lets any authenticated actor through unless strict ownership is enabled.
func CanModifyVenue(a Actor, ownerID uuid.UUID, strict bool) bool {
	if !a.Role.IsValid() {
		return false
	}
	if !strict {
		return true
	}
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner:
		return a.ID == ownerID
	case user.RoleUser:
		return false
	default:
		return false
	}
}

func CanAccessReservation(a Actor, o ReservationOwnership) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner:
		return a.ID == o.VenueOwnerID || a.ID == o.UserID
	case user.RoleUser:
		return a.ID == o.UserID
	default:
		return false
	}
}

// CanCreateReservation allows booking for oneself, plus venue owners and admins booking for anyone.
func CanCreateReservation(a Actor, o ReservationOwnership) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner:
		return a.ID == o.UserID || a.ID == o.VenueOwnerID
	case user.RoleUser:
		return a.ID == o.UserID
	default:
		return false
	}
}

func CanDeleteReservation(a Actor) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner, user.RoleUser:
		return false
	default:
		return false
	}
}

func ReservationScopeFor(a Actor) (ReservationScope, error) {
	switch a.Role {
	case user.RoleAdmin:
		return ScopeAll, nil
	case user.RoleOwner:
		return ScopeOwnAndVenues, nil
	case user.RoleUser:
		return ScopeOwn, nil
	default:
		return 0, ErrForbidden
	}
}

// CanWriteReview covers create-on-behalf, update and delete. Owners get no override.
func CanWriteReview(a Actor, authorID uuid.UUID) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner, user.RoleUser:
		return a.ID == authorID
	default:
		return false
	}
}

func CanManageUsers(a Actor) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner, user.RoleUser:
		return false
	default:
		return false
	}
}
