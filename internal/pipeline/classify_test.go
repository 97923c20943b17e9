package pipeline

import (
	"testing"

	"github.com/bollettelab/bollette-tracker/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.BillType
	}{
		{
			name: "gas only",
			text: "Fornitura gas naturale, lettura gas al 31/03, consumo 120 mc di metano",
			want: constants.BillTypeGas,
		},
		{
			name: "electricity only",
			text: "Consumo energia elettrica 230 kWh, potenza impegnata 3 kW",
			want: constants.BillTypeLuce,
		},
		{
			name: "both vocabularies present",
			text: "Energia elettrica 230 kWh e fornitura gas 120 mc",
			want: constants.BillTypeMix,
		},
		{
			name: "neither vocabulary",
			text: "Fattura numero 42 del 01/02/2026, totale 85,30",
			want: constants.BillTypeUnknown,
		},
		{
			name: "empty text",
			text: "",
			want: constants.BillTypeUnknown,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: constants.BillTypeUnknown,
		},
		{
			name: "uppercase input is matched case-insensitively",
			text: "CONSUMO GAS NATURALE",
			want: constants.BillTypeGas,
		},
		{
			name: "english terms count too",
			text: "electricity usage for the period",
			want: constants.BillTypeLuce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyCountsEachTermOnce(t *testing.T) {
	// "gas" repeated many times must not outweigh a single electricity term:
	// both vocabularies are present, so the result is MIX
	text := "gas gas gas gas gas gas, energia elettrica"
	if got := Classify(text); got != constants.BillTypeMix {
		t.Errorf("Classify = %s, want MIX", got)
	}
}
