package components

import (
	"context"
	"log/slog"
	"sync"

	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/config"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/shared"
	"trainer-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartWorkers),
)

type workerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *slog.Logger
	Expiry    commands.ExpiryCommands
	Observer  *worker.ExpiryObserver
	Outbox    shared.OutboxStore
	Publisher worker.EventPublisher
	Clock     clock.Clock
}

type runner interface {
	Run(ctx context.Context)
}

func StartWorkers(p workerParams) {
	runners := []runner{p.Observer}
	if p.Config.Worker.ExpirySweepEnabled {
		runners = append(runners, worker.NewExpirySweeper(
			p.Expiry, p.Config.Worker.ExpirySweepInterval, p.Config.Worker.ExpirySweepBatch))
	}
	if p.Config.Worker.OutboxEnabled {
		runners = append(runners, worker.NewOutboxDispatcher(
			p.Outbox, p.Publisher, p.Clock, p.Config.Worker.OutboxInterval, p.Config.Worker.OutboxBatch))
	}

	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			for _, r := range runners {
				wg.Add(1)
				go func(r runner) {
					defer wg.Done()
					r.Run(ctx)
				}(r)
			}
			p.Logger.Info("background workers started", "count", len(runners))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
