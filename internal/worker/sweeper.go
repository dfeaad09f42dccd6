package worker

import (
	"context"
	"log/slog"
	"time"

	"libris/internal/usecase/commands"
)

// Sweeper periodically expires reservations whose collection window has
// lapsed and returns their copies to the available pool.
type Sweeper struct {
	reservations commands.ReservationCommands
	interval     time.Duration
	stop         chan struct{}
	done         chan struct{}
}

func NewSweeper(reservations commands.ReservationCommands, interval time.Duration) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		interval:     interval,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start runs one sweep immediately, then on every tick until Stop.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)

		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop(ctx context.Context) error {
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.reservations.SweepExpired(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "reservation sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.InfoContext(ctx, "reservation sweep completed", "expired", count)
	}
}
