package bootstrap

import (
	"context"
	"log/slog"

	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/usecase/venuestate"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReconcileSweep),
)

// StartReconcileSweep rebuilds derived venue state every RECONCILE_INTERVAL.
func StartReconcileSweep(lc fx.Lifecycle, cfg config.Config, reconciler *venuestate.Reconciler, logger *slog.Logger) error {
	if !cfg.Reconcile.Enabled {
		return nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Reconcile.Interval),
		gocron.NewTask(func() {
			// a sweep never outlives its own interval
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Reconcile.Interval)
			defer cancel()
			if _, err := reconciler.Sweep(ctx); err != nil {
				logger.Error("reconcile sweep failed", slog.String("error", err.Error()))
			}
		}),
		gocron.WithName("venue-state-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			logger.Info("reconcile sweep scheduled", slog.Duration("interval", cfg.Reconcile.Interval))
			return nil
		},
		OnStop: func(_ context.Context) error {
			return sched.Shutdown()
		},
	})
	return nil
}
