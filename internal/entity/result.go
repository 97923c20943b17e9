package entity

import (
	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
)

// DocumentResult is the merged per-document outcome. BillType and CostPerUnit
// are always derived from MergedText, never from individual pages.
type DocumentResult struct {
	DocumentID     uuid.UUID
	Filename       string
	MergedText     string
	MeanConfidence float64 // 0..100; 0 when the document produced no pages
	BillType       constants.BillType
	CostPerUnit    *float64
	Warnings       []string
}

// BatchResult is one submission's outcome. Documents preserves input order and
// always has one entry per input document, even on total OCR failure.
type BatchResult struct {
	Documents []DocumentResult
	// Warnings holds one human-readable entry per document whose type is
	// UNKNOWN or whose cost could not be extracted.
	Warnings []string
}

// Classified reports whether at least one document resolved to a known type.
// Notification is only sent for submissions where this holds.
func (b BatchResult) Classified() bool {
	for _, d := range b.Documents {
		if d.BillType != constants.BillTypeUnknown {
			return true
		}
	}
	return false
}
