package venuestate

import (
	"context"
	"log/slog"
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// secondary effects outlive the request that triggered them
const effectTimeout = 5 * time.Second

type SlotLedger struct {
	uow         shared.UnitOfWork
	publisher   TaskPublisher
	invalidator shared.VenueListInvalidator
	logger      *slog.Logger
}

func NewSlotLedger(uow shared.UnitOfWork, publisher TaskPublisher, invalidator shared.VenueListInvalidator, logger *slog.Logger) *SlotLedger {
	return &SlotLedger{
		uow:         uow,
		publisher:   publisher,
		invalidator: invalidator,
		logger:      logger,
	}
}

// AddSlot never fails the caller. A failed add is logged and queued for reconciliation.
func (l *SlotLedger) AddSlot(ctx context.Context, venueID uuid.UUID, s slot.Slot) {
	l.run(ctx, Task{Kind: TaskSlotAdd, VenueID: venueID, Slot: &s})
}

// RemoveSlot is AddSlot's counterpart; removing an absent slot is a no-op.
func (l *SlotLedger) RemoveSlot(ctx context.Context, venueID uuid.UUID, s slot.Slot) {
	l.run(ctx, Task{Kind: TaskSlotRemove, VenueID: venueID, Slot: &s})
}

// ApplySlot performs a slot task and reports the failure instead of queueing it.
func (l *SlotLedger) ApplySlot(ctx context.Context, task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	s := slot.New(task.Slot.Time())

	var changed bool
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		switch task.Kind {
		case TaskSlotAdd:
			changed, err = tx.Slots().Add(ctx, tx.DB(), task.VenueID, s)
		case TaskSlotRemove:
			changed, err = tx.Slots().Remove(ctx, tx.DB(), task.VenueID, s)
		}
		return err
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		l.logger.Warn("venue not found for booked slot",
			slog.String("venue_id", task.VenueID.String()),
			slog.String("slot", s.Key()))
		return nil
	}
	if err != nil {
		return err
	}

	if changed {
		invalidate(ctx, l.invalidator, l.logger)
	}
	return nil
}

func (l *SlotLedger) run(ctx context.Context, task Task) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), effectTimeout)
	defer cancel()

	if err := l.ApplySlot(ctx, task); err != nil {
		l.logger.Error("booked slot update failed",
			slog.String("kind", string(task.Kind)),
			slog.String("venue_id", task.VenueID.String()),
			slog.String("slot", task.Slot.Key()),
			slog.String("error", err.Error()))
		enqueue(ctx, l.publisher, l.logger, task, err)
	}
}

// enqueue hands a failed effect to the reconcile queue. Publishing failures are only logged;
// the periodic sweep repairs what never reaches the queue.
func enqueue(ctx context.Context, publisher TaskPublisher, logger *slog.Logger, task Task, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), effectTimeout)
	defer cancel()

	task.Attempt++
	task.Reason = cause.Error()
	if err := publisher.Publish(ctx, task); err != nil {
		logger.Error("failed to enqueue reconcile task",
			slog.String("kind", string(task.Kind)),
			slog.String("venue_id", task.VenueID.String()),
			slog.String("error", err.Error()))
	}
}

func invalidate(ctx context.Context, invalidator shared.VenueListInvalidator, logger *slog.Logger) {
	if err := invalidator.InvalidateVenueList(ctx); err != nil {
		logger.Warn("failed to invalidate venue list cache", slog.String("error", err.Error()))
	}
}
