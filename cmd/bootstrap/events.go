package bootstrap

import (
	"context"
	"log/slog"

	"vet-scheduler/internal/infra/events"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(NewRelay),
	fx.Invoke(runRelay),
)

func NewRelay(uow shared.UnitOfWork, logger *slog.Logger, cfg config.Config) *events.Relay {
	var writer events.MessageWriter
	if brokers := events.SplitBrokers(cfg.Events.KafkaBrokers); len(brokers) > 0 {
		writer = events.NewKafkaWriter(brokers)
	}
	return events.NewRelay(uow, writer, logger, cfg.Events)
}

func runRelay(lc fx.Lifecycle, relay *events.Relay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return relay.Close()
		},
	})
}
