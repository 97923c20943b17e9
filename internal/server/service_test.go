package server

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

func TestPhonePattern(t *testing.T) {
	valid := []string{"+39 333 1234567", "3331234567", "+491701234567"}
	for _, p := range valid {
		if !rePhone.MatchString(p) {
			t.Errorf("rePhone rejected valid number %q", p)
		}
	}
	invalid := []string{"", "abc", "+", "12345", "+39-333-1234567", "333123456789012345678901"}
	for _, p := range invalid {
		if rePhone.MatchString(p) {
			t.Errorf("rePhone accepted invalid number %q", p)
		}
	}
}

func TestParseDateWindow(t *testing.T) {
	from, to, err := parseDateWindow("2026-01-01", "2026-03-31")
	if err != nil {
		t.Fatalf("parseDateWindow: %v", err)
	}
	if from == nil || !from.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", from)
	}
	if to == nil || !to.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v", to)
	}

	from, to, err = parseDateWindow("", "")
	if err != nil || from != nil || to != nil {
		t.Errorf("empty window = (%v, %v, %v), want (nil, nil, nil)", from, to, err)
	}

	if _, _, err := parseDateWindow("01/01/2026", ""); err == nil {
		t.Error("parseDateWindow accepted a non-ISO date")
	}
}

func TestToSubmissionResponse(t *testing.T) {
	cost := 0.25
	id1, id2 := uuid.New(), uuid.New()
	batch := entity.BatchResult{
		Documents: []entity.DocumentResult{
			{DocumentID: id1, Filename: "luce.pdf", BillType: constants.BillTypeLuce, CostPerUnit: &cost, MeanConfidence: 88},
			{DocumentID: id2, Filename: "boh.png", BillType: constants.BillTypeUnknown},
		},
		Warnings: []string{"document 2 (boh.png): bill type could not be determined"},
	}

	resp := toSubmissionResponse("sub-1", batch)
	if resp.SubmissionId != "sub-1" {
		t.Errorf("submission id = %q", resp.SubmissionId)
	}
	if len(resp.Documents) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(resp.Documents))
	}

	first := resp.Documents[0]
	if first.DocumentId != id1.String() || first.BillType != "LUCE" {
		t.Errorf("outcome 1 = (%s, %s)", first.DocumentId, first.BillType)
	}
	if !first.HasCost || first.CostPerUnit != 0.25 {
		t.Errorf("outcome 1 cost = (%v, %v), want (true, 0.25)", first.HasCost, first.CostPerUnit)
	}
	if first.MeanConfidence != 88 {
		t.Errorf("outcome 1 confidence = %v, want 88", first.MeanConfidence)
	}

	second := resp.Documents[1]
	if second.HasCost || second.CostPerUnit != 0 {
		t.Errorf("outcome 2 cost = (%v, %v), want (false, 0)", second.HasCost, second.CostPerUnit)
	}
	if len(resp.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(resp.Warnings))
	}
}
