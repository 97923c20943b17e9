package ocr

import "testing"

func TestTSVMeanConfidence(t *testing.T) {
	tsv := tsvHeader + "\n" +
		tsvWordRow("90", "consumo") + "\n" +
		tsvWordRow("80", "energia") + "\n"
	if got := tsvMeanConfidence(tsv); got != 85 {
		t.Errorf("mean = %v, want 85", got)
	}
}

func TestTSVMeanConfidenceSkipsNonWordRows(t *testing.T) {
	// block and line rows report -1; they must not drag the mean down
	tsv := tsvHeader + "\n" +
		tsvWordRow("-1", "") + "\n" +
		tsvWordRow("60", "gas") + "\n" +
		"short\trow\n"
	if got := tsvMeanConfidence(tsv); got != 60 {
		t.Errorf("mean = %v, want 60", got)
	}
}

func TestTSVMeanConfidenceEmpty(t *testing.T) {
	if got := tsvMeanConfidence(""); got != 0 {
		t.Errorf("mean of empty TSV = %v, want 0", got)
	}
	if got := tsvMeanConfidence(tsvHeader + "\n"); got != 0 {
		t.Errorf("mean of header-only TSV = %v, want 0", got)
	}
}

func TestHeuristicConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "bare text", text: "fattura", want: 20},
		{name: "supply code", text: "POD IT001E12345678", want: 40},
		{name: "unit price", text: "0,25 €/kWh", want: 50}, // price + amount
		{name: "all artifacts", text: "POD IT001E12345678 prezzo 0,25 €/kWh", want: 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := heuristicConfidence(tt.text); got != tt.want {
				t.Errorf("heuristicConfidence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "crlf to lf", in: "a\r\nb", want: "a\nb"},
		{name: "tabs and runs of spaces collapse", in: "a\t\tb   c", want: "a b c"},
		{name: "blank line runs collapse", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "trailing spaces trimmed", in: "a   \nb", want: "a\nb"},
		{name: "empty stays empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
