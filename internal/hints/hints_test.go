package hints

import (
	"testing"

	"github.com/bollettelab/bollette-tracker/constants"
)

func TestParseValidPayload(t *testing.T) {
	raw := []byte(`[{"bill_type":"GAS","confidence":0.9}]`)
	got, err := Parse(raw, 2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d hints, want 2", len(got))
	}
	if got[0] != constants.BillTypeGas {
		t.Errorf("hint 1 = %s, want GAS", got[0])
	}
	if got[1] != constants.BillTypeUnknown {
		t.Errorf("hint 2 = %s, want UNKNOWN (missing hint)", got[1])
	}
}

func TestParseSynonymsAndUnknownLabels(t *testing.T) {
	raw := []byte(`[{"bill_type":"energia elettrica"},{"bill_type":"boh"}]`)
	got, err := Parse(raw, 2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got[0] != constants.BillTypeLuce {
		t.Errorf("hint 1 = %s, want LUCE", got[0])
	}
	if got[1] != constants.BillTypeUnknown {
		t.Errorf("hint 2 = %s, want UNKNOWN for an unrecognized label", got[1])
	}
}

func TestParseEmptyPayload(t *testing.T) {
	for _, raw := range [][]byte{nil, {}} {
		got, err := Parse(raw, 3)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d hints, want 3", len(got))
		}
		for i, bt := range got {
			if bt != constants.BillTypeUnknown {
				t.Errorf("hint %d = %s, want UNKNOWN", i+1, bt)
			}
		}
	}
}

func TestParseRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bill_type not a string", raw: `[{"bill_type":42}]`},
		{name: "confidence above one", raw: `[{"bill_type":"GAS","confidence":1.5}]`},
		{name: "missing bill_type", raw: `[{"confidence":0.5}]`},
		{name: "unexpected property", raw: `[{"bill_type":"GAS","source":"browser"}]`},
		{name: "not an array", raw: `{"bill_type":"GAS"}`},
		{name: "malformed json", raw: `[{"bill_type":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw), 2); err == nil {
				t.Errorf("Parse(%s) accepted an invalid payload", tt.raw)
			}
		})
	}
}

func TestParseRejectsMoreHintsThanDocuments(t *testing.T) {
	raw := []byte(`[{"bill_type":"GAS"},{"bill_type":"LUCE"}]`)
	if _, err := Parse(raw, 1); err == nil {
		t.Error("Parse accepted two hints for one document")
	}
}
