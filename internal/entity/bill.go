package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
)

// Bill represents one stored bill row for data transfer between layers.
type Bill struct {
	ID           uuid.UUID          `json:"id"`
	SubmissionID uuid.UUID          `json:"submission_id"`
	Phone        string             `json:"phone"`
	BillType     constants.BillType `json:"bill_type"`
	CostPerUnit  *float64           `json:"cost_per_unit,omitempty"`
	Confidence   float64            `json:"confidence"`
	FileName     string             `json:"file_name"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Submission represents one processed batch for data transfer between layers.
type Submission struct {
	ID            uuid.UUID `json:"id"`
	Phone         string    `json:"phone"`
	DocumentCount int       `json:"document_count"`
	WarningCount  int       `json:"warning_count"`
	Notified      bool      `json:"notified"`
	CreatedAt     time.Time `json:"created_at"`
}
