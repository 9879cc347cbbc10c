package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"notify-lab/contract"
	apperrors "notify-lab/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor runs each worker in its own goroutine, recovers panics,
// restarts crashed workers and shuts everything down when the parent
// context is canceled. A failure in one worker never stops the others,
// except failures wrapping errors.ErrUnrecoverable: those stop every
// worker and surface from Run.
type Supervisor struct {
	Cancel  context.CancelFunc
	wg      *sync.WaitGroup
	log     *slog.Logger
	workers []contract.Worker

	mu    sync.Mutex
	fatal error
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log}
}

func (s *Supervisor) Add(worker ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts every added worker and blocks until all of them have
// finished. Cancellation of the parent ctx stops the children; calling
// s.Cancel() stops only the children. The returned error is the first
// unrecoverable worker failure, nil otherwise.
func (s *Supervisor) Run(ctx context.Context) error {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fatal
}

// Start runs a worker under supervision. A panic in Run is recovered and
// counted as a crash; crashed workers are restarted after a short delay,
// workers that return nil are considered done and never restarted.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = apperrors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			if errors.Is(err, apperrors.ErrUnrecoverable) {
				s.log.Error("Worker failed, not restarting", "name", workerName, "error", err)
				s.fail(err)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

// fail records the first unrecoverable error and stops the siblings.
func (s *Supervisor) fail(err error) {
	s.mu.Lock()
	if s.fatal == nil {
		s.fatal = err
	}
	s.mu.Unlock()
	s.Stop()
}

// Stop cancels the supervised context; Run then waits for every
// goroutine to finish.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
