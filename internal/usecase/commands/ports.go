package commands

import (
	"context"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/domain/user"

	"github.com/google/uuid"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

// SlotLedger and RatingRecomputer run after the primary commit and never fail the caller.
type SlotLedger interface {
	AddSlot(ctx context.Context, venueID uuid.UUID, s slot.Slot)
	RemoveSlot(ctx context.Context, venueID uuid.UUID, s slot.Slot)
}

type RatingRecomputer interface {
	Recompute(ctx context.Context, venueID uuid.UUID)
}
