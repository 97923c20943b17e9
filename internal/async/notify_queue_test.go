package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/internal/entity"
)

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
	gate  chan struct{}
	calls int
}

func (f *fakeNotifier) SendConfirmation(_ context.Context, phone string, _ entity.BatchResult) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errors.New("gateway down")
	}
	f.sent = append(f.sent, phone)
	return nil
}

type fakeSubsRepo struct {
	mu       sync.Mutex
	notified []uuid.UUID
}

func (f *fakeSubsRepo) Create(_ context.Context, phone string, documentCount, warningCount int) (*entity.Submission, error) {
	return &entity.Submission{ID: uuid.New(), Phone: phone, DocumentCount: documentCount, WarningCount: warningCount}, nil
}

func (f *fakeSubsRepo) MarkNotified(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyQueueDeliversAndMarksNotified(t *testing.T) {
	notifier := &fakeNotifier{}
	subs := &fakeSubsRepo{}
	q := NewNotifyQueue(notifier, subs, testLogger(), WithWorkers(1))

	id := uuid.New()
	err := q.Enqueue(context.Background(), Job{
		SubmissionID: id,
		Phone:        "+391234567890",
		SubmittedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	notifier.mu.Lock()
	sent := append([]string(nil), notifier.sent...)
	notifier.mu.Unlock()
	if len(sent) != 1 || sent[0] != "+391234567890" {
		t.Errorf("sent = %v, want one confirmation", sent)
	}

	subs.mu.Lock()
	notified := append([]uuid.UUID(nil), subs.notified...)
	subs.mu.Unlock()
	if len(notified) != 1 || notified[0] != id {
		t.Errorf("notified = %v, want [%s]", notified, id)
	}
}

func TestNotifyQueueSendFailureSkipsMarkNotified(t *testing.T) {
	notifier := &fakeNotifier{fail: true}
	subs := &fakeSubsRepo{}
	q := NewNotifyQueue(notifier, subs, testLogger(), WithWorkers(1))

	_ = q.Enqueue(context.Background(), Job{SubmissionID: uuid.New(), Phone: "+391234567890"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	subs.mu.Lock()
	defer subs.mu.Unlock()
	if len(subs.notified) != 0 {
		t.Errorf("submission marked notified after a failed send: %v", subs.notified)
	}
}

func TestNotifyQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	notifier := &fakeNotifier{}
	subs := &fakeSubsRepo{}
	q := NewNotifyQueue(notifier, subs, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.calls != 0 {
		t.Errorf("notifier called %d times after shutdown, want 0", notifier.calls)
	}
}

func TestNotifyQueueFullQueueDoesNotBlockEnqueue(t *testing.T) {
	notifier := &fakeNotifier{gate: make(chan struct{})}
	subs := &fakeSubsRepo{}
	q := NewNotifyQueue(notifier, subs, testLogger(), WithWorkers(1), WithQueueSize(1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 8; i++ {
			_ = q.Enqueue(context.Background(), Job{SubmissionID: uuid.New(), Phone: "+391234567890"})
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(notifier.gate)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	// the worker holds at most one job and the channel one more; the rest
	// must have been dropped rather than queued
	if len(notifier.sent) > 2 {
		t.Errorf("sent %d confirmations from a size-1 queue, want at most 2", len(notifier.sent))
	}
}

func TestNotifyQueueShutdownDrainsPendingJobs(t *testing.T) {
	notifier := &fakeNotifier{gate: make(chan struct{})}
	subs := &fakeSubsRepo{}
	q := NewNotifyQueue(notifier, subs, testLogger(), WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 3; i++ {
		_ = q.Enqueue(context.Background(), Job{SubmissionID: uuid.New(), Phone: "+391234567890"})
	}
	close(notifier.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.sent) != 3 {
		t.Errorf("sent %d confirmations, want 3", len(notifier.sent))
	}
}
