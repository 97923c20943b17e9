package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/gen/ent"
	"github.com/bollettelab/bollette-tracker/gen/ent/bill"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// CreateBillRequest wraps parameters for persisting one processed document.
type CreateBillRequest struct {
	SubmissionID uuid.UUID
	Phone        string
	Result       entity.DocumentResult
}

type BillRepository interface {
	CreateFromResult(ctx context.Context, req *CreateBillRequest) (*entity.Bill, error)
	ListByPhone(ctx context.Context, phone string, fromDate, toDate *time.Time) ([]*entity.Bill, error)
}

type billRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillRepository(client *ent.Client, logger *slog.Logger) BillRepository {
	return &billRepository{
		client: client,
		logger: logger,
	}
}

func (r *billRepository) CreateFromResult(ctx context.Context, req *CreateBillRequest) (*entity.Bill, error) {
	res := req.Result

	row, err := r.client.Bill.Create().
		SetSubmissionID(req.SubmissionID).
		SetPhone(req.Phone).
		SetBillType(string(res.BillType)).
		SetNillableCostPerUnit(res.CostPerUnit).
		SetConfidence(res.MeanConfidence).
		SetFileName(res.Filename).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create bill", "phone", req.Phone, "file", res.Filename, "error", err)
		return nil, common.WrapError(err, "create bill")
	}
	return toBill(row), nil
}

func (r *billRepository) ListByPhone(ctx context.Context, phone string, fromDate, toDate *time.Time) ([]*entity.Bill, error) {
	q := r.client.Bill.Query().Where(bill.Phone(phone))
	if fromDate != nil {
		q = q.Where(bill.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(bill.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(bill.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bills", "phone", phone, "error", err)
		return nil, common.WrapError(err, "list bills")
	}

	result := make([]*entity.Bill, len(rows))
	for i, row := range rows {
		result[i] = toBill(row)
	}
	return result, nil
}

func toBill(row *ent.Bill) *entity.Bill {
	return &entity.Bill{
		ID:           row.ID,
		SubmissionID: row.SubmissionID,
		Phone:        row.Phone,
		BillType:     constants.BillType(row.BillType),
		CostPerUnit:  row.CostPerUnit,
		Confidence:   row.Confidence,
		FileName:     row.FileName,
		CreatedAt:    row.CreatedAt,
	}
}
