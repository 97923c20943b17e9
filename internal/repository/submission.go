package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/gen/ent"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

type SubmissionRepository interface {
	Create(ctx context.Context, phone string, documentCount, warningCount int) (*entity.Submission, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, phone string, documentCount, warningCount int) (*entity.Submission, error) {
	row, err := r.client.Submission.Create().
		SetPhone(phone).
		SetDocumentCount(documentCount).
		SetWarningCount(warningCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create submission", "phone", phone, "error", err)
		return nil, common.WrapError(err, "create submission")
	}
	return &entity.Submission{
		ID:            row.ID,
		Phone:         row.Phone,
		DocumentCount: row.DocumentCount,
		WarningCount:  row.WarningCount,
		Notified:      row.Notified,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func (r *submissionRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Submission.UpdateOneID(id).SetNotified(true).Exec(ctx); err != nil {
		r.logger.Error("failed to mark submission notified", "submission_id", id, "error", err)
		return common.WrapError(err, "mark submission notified")
	}
	return nil
}
