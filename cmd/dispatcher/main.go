package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"wishkeeper/cmd/bootstrap"
	"wishkeeper/cmd/bootstrap/components"
	"wishkeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

const (
	pollInterval = 2 * time.Second
	batchSize    = 100
)

// runDispatcher drains the change-event outbox in id order and hands each
// event to delivery. Delivery here is structured logging; swapping in a real
// sink (webhook, queue) only changes the body of the loop. The cursor is
// in-memory: events are re-emitted after a restart, so consumers must be
// idempotent on event id.
func runDispatcher(lc fx.Lifecycle, eventQueries queries.EventQueries, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting event dispatcher", "poll_interval", pollInterval.String())
			go func() {
				defer close(done)
				var cursor int64
				ticker := time.NewTicker(pollInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
					}

					events, err := eventQueries.ListAfter(ctx, cursor, batchSize)
					if err != nil {
						logger.Error("failed to load change events", "error", err, "cursor", cursor)
						continue
					}
					for _, ev := range events {
						logger.Info("change event",
							"id", ev.ID,
							"name", ev.Name,
							"resource_id", ev.ResourceID,
							"payload", string(ev.Payload),
						)
						cursor = ev.ID
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			logger.Info("event dispatcher stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.DBModule,
		bootstrap.LoggerModule,
		components.PersistenceModule,
		fx.Provide(
			queries.NewEventQueries,
		),
		fx.Invoke(
			runDispatcher,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start dispatcher", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop dispatcher cleanly", "error", err)
	}
}
