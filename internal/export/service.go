package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bollettelab/bollette-tracker/internal/repository"
)

// Service is a tiny façade over the bill repository that produces XLSX bytes.
type Service struct {
	billsRepo repository.BillRepository
	logger    *slog.Logger
}

func NewService(billsRepo repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{billsRepo: billsRepo, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes) for the given phone and
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all bills for the phone.
func (s *Service) ExportBillsXLSX(ctx context.Context, phone string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	bills, err := s.billsRepo.ListByPhone(ctx, phone, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Processed At",
		"Bill Type",
		"Cost Per Unit",
		"OCR Confidence",
		"Source File",
		"Phone",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, b.CreatedAt.Format("2006-01-02 15:04"))
		write(2, string(b.BillType))
		if b.CostPerUnit != nil {
			write(3, *b.CostPerUnit)
		} else {
			write(3, "")
		}
		write(4, fmt.Sprintf("%.1f", b.Confidence))
		write(5, b.FileName)
		write(6, b.Phone)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // processed at
	_ = f.SetColWidth(sheet, "B", "B", 12) // type
	_ = f.SetColWidth(sheet, "C", "D", 14) // cost + confidence
	_ = f.SetColWidth(sheet, "E", "E", 40) // file
	_ = f.SetColWidth(sheet, "F", "F", 18) // phone

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"phone", phone,
		"rows", len(bills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
