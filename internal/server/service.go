package server

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"log/slog"

	"github.com/bollettelab/bollette-tracker/constants"
	v1 "github.com/bollettelab/bollette-tracker/gen/proto/bills/v1"
	"github.com/bollettelab/bollette-tracker/internal/async"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
	"github.com/bollettelab/bollette-tracker/internal/export"
	"github.com/bollettelab/bollette-tracker/internal/hints"
	"github.com/bollettelab/bollette-tracker/internal/pipeline"
	"github.com/bollettelab/bollette-tracker/internal/repository"
)

var rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ]{5,19}$`)

type BillsService struct {
	v1.UnimplementedBillsServiceServer
	coordinator *pipeline.Coordinator
	billsRepo   repository.BillRepository
	subsRepo    repository.SubmissionRepository
	exporter    *export.Service
	notifyQueue async.Queue
	logger      *slog.Logger

	artifactCacheDir string
	batchTimeout     time.Duration
}

func NewBillsService(
	coordinator *pipeline.Coordinator,
	billsRepo repository.BillRepository,
	subsRepo repository.SubmissionRepository,
	exporter *export.Service,
	notifyQueue async.Queue,
	logger *slog.Logger,
	artifactCacheDir string,
	batchTimeout time.Duration,
) *BillsService {
	if logger == nil {
		logger = slog.Default()
	}
	if artifactCacheDir == "" {
		artifactCacheDir = "./tmp"
	}
	if batchTimeout <= 0 {
		batchTimeout = 2 * time.Minute
	}
	return &BillsService{
		coordinator:      coordinator,
		billsRepo:        billsRepo,
		subsRepo:         subsRepo,
		exporter:         exporter,
		notifyQueue:      notifyQueue,
		logger:           logger,
		artifactCacheDir: artifactCacheDir,
		batchTimeout:     batchTimeout,
	}
}

// ProcessSubmission implements v1.BillsServiceServer.
func (s *BillsService) ProcessSubmission(ctx context.Context, req *v1.ProcessSubmissionRequest) (*v1.ProcessSubmissionResponse, error) {
	phone := strings.TrimSpace(req.GetPhone())
	if phone == "" {
		return nil, common.InvalidArgumentError("phone is required")
	}
	if !rePhone.MatchString(phone) {
		return nil, common.InvalidArgumentError("phone must be a valid number")
	}
	uploads := req.GetDocuments()
	if len(uploads) == 0 {
		return nil, common.InvalidArgumentError("at least one document is required")
	}
	for i, up := range uploads {
		if constants.MapMIMEToKind(up.GetMimeType()) == "" {
			return nil, common.InvalidArgumentErrorf("document %d: unsupported mime type %q", i+1, up.GetMimeType())
		}
		if len(up.GetContent()) == 0 {
			return nil, common.InvalidArgumentErrorf("document %d: empty content", i+1)
		}
		if len(up.GetContent()) > constants.MaxUploadBytes {
			return nil, common.InvalidArgumentErrorf("document %d: exceeds %d byte limit", i+1, constants.MaxUploadBytes)
		}
	}

	typeHints, err := hints.Parse(req.GetHintsJson(), len(uploads))
	if err != nil {
		return nil, common.InvalidArgumentErrorf("hints: %v", err)
	}

	docs, cleanup, err := stageDocuments(s.artifactCacheDir, uploads, typeHints)
	defer cleanup()
	if err != nil {
		s.logger.Error("failed to stage submission", "phone", phone, "error", err)
		return nil, common.InternalError("failed to stage documents")
	}

	s.logger.Info("processing submission", "phone", phone, "documents", len(docs))
	pctx, cancel := context.WithTimeout(ctx, s.batchTimeout)
	defer cancel()
	batch, err := s.coordinator.ProcessBatch(pctx, docs)
	if err != nil {
		s.logger.Error("batch processing failed", "phone", phone, "error", err)
		return nil, common.InternalError("batch processing failed")
	}

	sub, err := s.subsRepo.Create(ctx, phone, len(batch.Documents), len(batch.Warnings))
	if err != nil {
		return nil, common.InternalError("persist submission failed")
	}
	for _, res := range batch.Documents {
		if _, err := s.billsRepo.CreateFromResult(ctx, &repository.CreateBillRequest{
			SubmissionID: sub.ID,
			Phone:        phone,
			Result:       res,
		}); err != nil {
			return nil, common.InternalError("persist bill failed")
		}
	}

	// confirmation goes out only when something was recognized, and its
	// delivery never affects the rows written above
	if batch.Classified() {
		_ = s.notifyQueue.Enqueue(ctx, async.Job{
			SubmissionID: sub.ID,
			Phone:        phone,
			Batch:        batch,
			SubmittedAt:  time.Now().UTC(),
		})
	}

	return toSubmissionResponse(sub.ID.String(), batch), nil
}

// ListBills implements v1.BillsServiceServer.
func (s *BillsService) ListBills(ctx context.Context, req *v1.ListBillsRequest) (*v1.ListBillsResponse, error) {
	phone := strings.TrimSpace(req.GetPhone())
	if phone == "" {
		return nil, common.InvalidArgumentError("phone is required")
	}
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	bills, err := s.billsRepo.ListByPhone(ctx, phone, from, to)
	if err != nil {
		s.logger.Error("list bills failed", "phone", phone, "error", err)
		return nil, common.InternalError("list bills failed")
	}

	out := make([]*v1.Bill, 0, len(bills))
	for _, b := range bills {
		pb := &v1.Bill{
			Id:         b.ID.String(),
			Phone:      b.Phone,
			BillType:   string(b.BillType),
			HasCost:    b.CostPerUnit != nil,
			Confidence: b.Confidence,
			FileName:   b.FileName,
			CreatedAt:  b.CreatedAt.Format(time.RFC3339Nano),
		}
		if b.CostPerUnit != nil {
			pb.CostPerUnit = *b.CostPerUnit
		}
		out = append(out, pb)
	}
	return &v1.ListBillsResponse{Bills: out}, nil
}

// ExportBills implements v1.BillsServiceServer.
func (s *BillsService) ExportBills(ctx context.Context, req *v1.ExportBillsRequest) (*v1.ExportBillsResponse, error) {
	phone := strings.TrimSpace(req.GetPhone())
	if phone == "" {
		return nil, common.InvalidArgumentError("phone is required")
	}
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	xlsx, err := s.exporter.ExportBillsXLSX(ctx, phone, from, to)
	if err != nil {
		s.logger.Error("export bills failed", "phone", phone, "error", err)
		return nil, common.InternalError("export bills failed")
	}
	return &v1.ExportBillsResponse{Xlsx: xlsx}, nil
}

func parseDateWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}

	from, err := parseDate(fromStr)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func toSubmissionResponse(submissionID string, batch entity.BatchResult) *v1.ProcessSubmissionResponse {
	resp := &v1.ProcessSubmissionResponse{
		SubmissionId: submissionID,
		Documents:    make([]*v1.DocumentOutcome, 0, len(batch.Documents)),
		Warnings:     batch.Warnings,
	}
	for _, d := range batch.Documents {
		outcome := &v1.DocumentOutcome{
			DocumentId:     d.DocumentID.String(),
			Filename:       d.Filename,
			BillType:       string(d.BillType),
			HasCost:        d.CostPerUnit != nil,
			MeanConfidence: d.MeanConfidence,
		}
		if d.CostPerUnit != nil {
			outcome.CostPerUnit = *d.CostPerUnit
		}
		resp.Documents = append(resp.Documents, outcome)
	}
	return resp
}
