package entity

import (
	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
)

// Document is one uploaded file, consumed exactly once by the pipeline.
type Document struct {
	ID        uuid.UUID
	Filename  string
	MediaKind constants.MediaKind
	// SourcePath points at the staged copy in the artifact cache; the
	// exec-based OCR tools read from disk, not from memory.
	SourcePath string
	// TypeHint is the client-suggested bill type, advisory only.
	TypeHint constants.BillType
}

// PageResult is the OCR output for a single rasterized page.
type PageResult struct {
	PageIndex  int
	Text       string
	Confidence float64 // engine-reported, 0..100
	Warnings   []string
}
