// Package venuestate keeps the derived per-venue state (booked slots, rating and review count)
// in line with reservations and reviews. Writes happen after the primary commit; whatever fails
// is handed to a TaskPublisher so the Reconciler can replay it.
package venuestate

import (
	"context"
	"fmt"

	"halisaha-api/internal/domain/slot"

	"github.com/google/uuid"
)

type TaskKind string

const (
	TaskSlotAdd         TaskKind = "slot.add"
	TaskSlotRemove      TaskKind = "slot.remove"
	TaskRatingRecompute TaskKind = "rating.recompute"
)

func (k TaskKind) IsValid() bool {
	switch k {
	case TaskSlotAdd, TaskSlotRemove, TaskRatingRecompute:
		return true
	default:
		return false
	}
}

// Task is the queued form of a secondary effect that did not complete.
type Task struct {
	Kind    TaskKind   `json:"kind"`
	VenueID uuid.UUID  `json:"venueId"`
	Slot    *slot.Slot `json:"slot,omitempty"`
	Attempt int        `json:"attempt"`
	Reason  string     `json:"reason,omitempty"`
}

func (t Task) Validate() error {
	if !t.Kind.IsValid() {
		return fmt.Errorf("unknown task kind %q", t.Kind)
	}
	if t.VenueID == uuid.Nil {
		return fmt.Errorf("%s task without venue id", t.Kind)
	}
	if t.Kind != TaskRatingRecompute && (t.Slot == nil || t.Slot.IsZero()) {
		return fmt.Errorf("%s task without slot", t.Kind)
	}
	return nil
}

type TaskPublisher interface {
	Publish(ctx context.Context, task Task) error
}

// NopPublisher drops tasks; the periodic sweep still repairs whatever they described.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Task) error { return nil }
