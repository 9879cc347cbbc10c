package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "notify-lab/errors"
	"notify-lab/mocks"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	calls := 0
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls++
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	go sup.Add(workerMock).Run(ctx)

	// Waiting for panics and restarts
	time.Sleep(900 * time.Millisecond)

	req.GreaterOrEqual(calls, 2)
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success, returned nil and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_StopOnCancel(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker that blocks until its context is canceled
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)

	sup := NewSupervisor(log)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
		// Then the worker was not restarted after cancellation
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after cancellation")
	}
}

func TestSupervisor_StopOnUnrecoverableError(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given a worker failing beyond repair, exactly once
	failing := mocks.NewMockWorker(ctrl)
	failing.EXPECT().
		Run(gomock.Any()).
		Return(fmt.Errorf("listen: %w", apperrors.ErrUnrecoverable)).
		Times(1)

	// Given a sibling that blocks until it is canceled
	sibling := mocks.NewMockWorker(ctrl)
	sibling.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		AnyTimes()

	sup := NewSupervisor(log)

	done := make(chan error, 1)
	go func() {
		done <- sup.Add(failing, sibling).Run(context.Background())
	}()

	select {
	case err := <-done:
		// Then the failure was not retried, stopped the sibling and
		// surfaced from Run
		req.ErrorIs(err, apperrors.ErrUnrecoverable)
	case <-time.After(2 * time.Second):
		req.Fail("Supervisor should have stopped on the unrecoverable failure")
	}
}

func TestTelemetryWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockSessionRegistry(ctrl)
	registry.EXPECT().OnlineCount().Return(0).AnyTimes()

	worker := NewTelemetryWorker(slog.Default(), 10*time.Millisecond, registry)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(500 * time.Millisecond):
		req.Fail("Telemetry worker should have stopped after cancellation")
	}
}
