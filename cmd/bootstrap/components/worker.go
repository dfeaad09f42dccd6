package components

import (
	"context"

	"libris/internal/pkg/config"
	"libris/internal/usecase/commands"
	"libris/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewSweeper(cfg config.Config, reservations commands.ReservationCommands) *worker.Sweeper {
	return worker.NewSweeper(reservations, cfg.Sweeper.Interval)
}

func registerSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
