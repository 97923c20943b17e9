package constants

import "testing"

func TestCanonicalizeBillType(t *testing.T) {
	tests := []struct {
		input  string
		want   BillType
		wantOK bool
	}{
		{input: "LUCE", want: BillTypeLuce, wantOK: true},
		{input: "gas", want: BillTypeGas, wantOK: true},
		{input: " Mix ", want: BillTypeMix, wantOK: true},
		{input: "UNKNOWN", want: BillTypeUnknown, wantOK: true},
		{input: "elettricità", want: BillTypeLuce, wantOK: true},
		{input: "energia elettrica", want: BillTypeLuce, wantOK: true},
		{input: "metano", want: BillTypeGas, wantOK: true},
		{input: "gas naturale", want: BillTypeGas, wantOK: true},
		{input: "dual fuel", want: BillTypeMix, wantOK: true},
		{input: "acqua", want: BillTypeUnknown, wantOK: false},
		{input: "", want: BillTypeUnknown, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalizeBillType(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalizeBillType(%q) = (%s, %v), want (%s, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBillTypesAsStrings(t *testing.T) {
	got := BillTypesAsStrings()
	want := []string{"LUCE", "GAS", "MIX", "UNKNOWN"}
	if len(got) != len(want) {
		t.Fatalf("got %d types, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("type %d = %s, want %s", i, got[i], want[i])
		}
	}
}
