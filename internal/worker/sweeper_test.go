//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"libris/internal/usecase/commands"
	"libris/internal/usecase/queries"
	"libris/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationCommands struct {
	sweeps atomic.Int64
	err    error
}

func (s *stubReservationCommands) Create(context.Context, uuid.UUID, uuid.UUID) (*queries.ReservationView, error) {
	panic("not used")
}

func (s *stubReservationCommands) UpdateStatus(context.Context, uuid.UUID, uuid.UUID, commands.ReservationAction) (*queries.ReservationView, error) {
	panic("not used")
}

func (s *stubReservationCommands) SweepExpired(context.Context) (int64, error) {
	s.sweeps.Add(1)
	return 2, s.err
}

func TestSweeper_SweepsImmediatelyAndOnTick(t *testing.T) {
	stub := &stubReservationCommands{}
	s := worker.NewSweeper(stub, 10*time.Millisecond)

	s.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	}()

	require.Eventually(t, func() bool {
		return stub.sweeps.Load() >= 3
	}, time.Second, 5*time.Millisecond, "expected the initial sweep plus ticks")
}

func TestSweeper_StopWaitsForTheLoop(t *testing.T) {
	stub := &stubReservationCommands{}
	s := worker.NewSweeper(stub, time.Hour)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	// The loop is gone; no further sweeps happen.
	count := stub.sweeps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, count, stub.sweeps.Load())
}

func TestSweeper_KeepsRunningAfterErrors(t *testing.T) {
	stub := &stubReservationCommands{err: assert.AnError}
	s := worker.NewSweeper(stub, 10*time.Millisecond)

	s.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	}()

	require.Eventually(t, func() bool {
		return stub.sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond, "a failing sweep must not kill the loop")
}
