package bootstrap

import (
	"context"
	"log/slog"

	"halisaha-api/internal/infra/broker"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/usecase/venuestate"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewTaskPublisher,
	),
	fx.Invoke(StartConsumer),
)

func NewTaskPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) venuestate.TaskPublisher {
	if !cfg.Broker.Enabled {
		logger.Info("broker disabled; failed effects wait for the periodic sweep")
		return venuestate.NopPublisher{}
	}
	pub := broker.NewPublisher(cfg.Broker, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func StartConsumer(lc fx.Lifecycle, cfg config.Config, reconciler *venuestate.Reconciler, retry venuestate.TaskPublisher, logger *slog.Logger) {
	if !cfg.Broker.Enabled {
		return
	}
	consumer := broker.NewConsumer(cfg.Broker, reconciler, retry, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				consumer.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
