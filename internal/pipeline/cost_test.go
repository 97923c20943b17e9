package pipeline

import "testing"

func TestExtractCostPerUnit(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantNil bool
	}{
		{name: "electricity with euro and comma decimal", text: "Consumo energia: 0,25 €/kWh", want: 0.25},
		{name: "gas with EUR word", text: "Letture gas 1,10 EUR/mc", want: 1.10},
		{name: "electricity dot decimal", text: "prezzo 0.30 €/kWh", want: 0.30},
		{name: "dollar prefix with per", text: "$0.15 per kwh", want: 0.15},
		{name: "cubic metre symbol", text: "0,85 €/m³", want: 0.85},
		{name: "bare kw unit", text: "2,50/kw", want: 2.50},
		{name: "no unit pattern", text: "totale fattura 85,30 euro", wantNil: true},
		{name: "empty text", text: "", wantNil: true},
		{name: "whitespace only", text: "  \n ", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCostPerUnit(tt.text)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ExtractCostPerUnit(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractCostPerUnit(%q) = nil, want %v", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ExtractCostPerUnit(%q) = %v, want %v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestExtractCostPerUnitGasWinsOverElectricity(t *testing.T) {
	// combined bills list electricity charges first; the gas-unit price must
	// overwrite the electricity one
	text := "Energia elettrica: 0,30 €/kWh\nGas naturale: 0,85 €/mc"
	got := ExtractCostPerUnit(text)
	if got == nil {
		t.Fatal("ExtractCostPerUnit = nil, want 0.85")
	}
	if *got != 0.85 {
		t.Errorf("ExtractCostPerUnit = %v, want 0.85 (gas tie-break)", *got)
	}
}

func TestExtractCostPerUnitGasTieBreakWithCubicMetreSymbol(t *testing.T) {
	text := "Energia elettrica: 0,30 €/kWh\nGas naturale: 0,85 €/m³"
	got := ExtractCostPerUnit(text)
	if got == nil {
		t.Fatal("ExtractCostPerUnit = nil, want 0.85")
	}
	if *got != 0.85 {
		t.Errorf("ExtractCostPerUnit = %v, want 0.85 (m³ spelling must win the tie-break)", *got)
	}
}

func TestExtractCostPerUnitGasWinsRegardlessOfOrder(t *testing.T) {
	text := "Gas: 0,85 €/mc poi energia 0,30 €/kWh"
	got := ExtractCostPerUnit(text)
	if got == nil || *got != 0.85 {
		t.Errorf("ExtractCostPerUnit = %v, want 0.85", got)
	}
}
