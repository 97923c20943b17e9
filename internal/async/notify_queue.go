package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/bollettelab/bollette-tracker/internal/notify"
	"github.com/bollettelab/bollette-tracker/internal/repository"
)

// NotifyQueue dispatches SMS confirmations off the request path. A failed
// send is logged and dropped; persisted results are never rolled back over a
// notification problem.
type NotifyQueue struct {
	notifier notify.Notifier
	subsRepo repository.SubmissionRepository
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*NotifyQueue)

func WithWorkers(n int) Option {
	return func(q *NotifyQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *NotifyQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithSendTimeout(d time.Duration) Option {
	return func(q *NotifyQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewNotifyQueue(notifier notify.Notifier, subsRepo repository.SubmissionRepository, logger *slog.Logger, opts ...Option) *NotifyQueue {
	q := &NotifyQueue{
		notifier: notifier,
		subsRepo: subsRepo,
		logger:   logger,
		workers:  2,
		timeout:  30 * time.Second,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *NotifyQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("notify worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.notifier.SendConfirmation(ctx, job.Phone, job.Batch)
					if err == nil {
						err = q.subsRepo.MarkNotified(ctx, job.SubmissionID)
					}
					cancel()

					if err != nil {
						q.logger.Error("confirmation failed", "worker_id", workerID, "submission_id", job.SubmissionID, "error", err)
					} else {
						q.logger.Info("confirmation sent", "worker_id", workerID, "submission_id", job.SubmissionID)
					}
				}

				q.logger.Info("notify worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *NotifyQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "submission_id", job.SubmissionID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued confirmation", "submission_id", job.SubmissionID)
	default:
		// blocking here would hold q.mu and stall every other Enqueue and
		// Shutdown; a confirmation is best-effort, so a full queue drops it
		q.logger.Warn("notify queue full, dropping confirmation", "submission_id", job.SubmissionID)
	}
	return nil
}

func (q *NotifyQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("notify queue drained, shutdown complete")
	}
}
