package venuestate

import (
	"context"
	"log/slog"

	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Reconciler replays queued tasks and periodically rebuilds derived venue state from scratch.
type Reconciler struct {
	uow    shared.UnitOfWork
	ledger *SlotLedger
	rating *RatingAggregator
	// pruning is only sound when deleting a reservation also releases its slot
	pruneOrphans bool
	logger       *slog.Logger
}

func NewReconciler(uow shared.UnitOfWork, ledger *SlotLedger, rating *RatingAggregator, cfg config.BookingConfig, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		uow:          uow,
		ledger:       ledger,
		rating:       rating,
		pruneOrphans: cfg.ReleaseSlotOnDelete,
		logger:       logger,
	}
}

func (r *Reconciler) Handle(ctx context.Context, task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	switch task.Kind {
	case TaskSlotAdd, TaskSlotRemove:
		return r.ledger.ApplySlot(ctx, task)
	case TaskRatingRecompute:
		return r.rating.Apply(ctx, task.VenueID)
	default:
		return errs.Newf("unhandled task kind %q", task.Kind)
	}
}

type SweepResult struct {
	SlotsRestored int64
	SlotsPruned   int64
	VenuesRated   int
}

// Sweep re-adds the slot of every active reservation and recomputes every venue's rating.
// With release-on-delete it also drops slots that no reservation row points at any more.
func (r *Reconciler) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	var venueIDs []uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		restored, err := tx.Slots().RestoreActive(ctx, tx.DB())
		if err != nil {
			return err
		}
		res.SlotsRestored = restored

		if r.pruneOrphans {
			pruned, err := tx.Slots().PruneOrphans(ctx, tx.DB())
			if err != nil {
				return err
			}
			res.SlotsPruned = pruned
		}

		venueIDs, err = tx.Venues().ListIDs(ctx, tx.DB())
		return err
	})
	if err != nil {
		return res, errs.Wrap(err, "slot sweep")
	}
	if res.SlotsRestored > 0 || res.SlotsPruned > 0 {
		invalidate(ctx, r.rating.invalidator, r.logger)
	}

	var failures []error
	for _, id := range venueIDs {
		if err := r.rating.Apply(ctx, id); err != nil {
			failures = append(failures, errs.Wrapf(err, "recompute venue %s", id))
			continue
		}
		res.VenuesRated++
	}

	r.logger.Info("venue state sweep finished",
		slog.Int64("slots_restored", res.SlotsRestored),
		slog.Int64("slots_pruned", res.SlotsPruned),
		slog.Int("venues_rated", res.VenuesRated),
		slog.Int("failures", len(failures)))

	if len(failures) > 0 {
		return res, errs.Join(failures...)
	}
	return res, nil
}
