package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// Job carries everything needed to confirm one processed submission.
type Job struct {
	SubmissionID uuid.UUID
	Phone        string
	Batch        entity.BatchResult
	SubmittedAt  time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
