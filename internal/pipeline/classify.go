package pipeline

import (
	"strings"

	"github.com/bollettelab/bollette-tracker/constants"
)

// Term vocabularies for bill-type detection. Bills vary widely in layout and
// OCR mangles unrelated regions, so detection counts which known terms appear
// anywhere in the text instead of parsing a fixed format. Italian and English
// terms both occur on real bills.
var gasTerms = []string{
	"gas", "cubic meter", "m³", "mc", "metano", "consumo gas",
	"lettura gas", "fornitura gas", "gas naturale",
}

var electricityTerms = []string{
	"electricity", "electric", "kw", "kwh", "kilowatt",
	"energia elettrica", "consumo energia", "luce", "elettricità",
	"potenza", "lettura energia", "energia", "corrente elettrica",
}

// countPresent counts how many vocabulary terms occur in text as substrings.
// Each term contributes at most 1 regardless of how often it repeats.
func countPresent(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// Classify derives the bill type from the merged document text.
// Precedence: both vocabularies present -> MIX, then GAS, then LUCE,
// then UNKNOWN. Empty or unrecognized text is UNKNOWN, never an error.
func Classify(mergedText string) constants.BillType {
	text := strings.ToLower(mergedText)

	gasCount := countPresent(text, gasTerms)
	electricityCount := countPresent(text, electricityTerms)

	switch {
	case gasCount > 0 && electricityCount > 0:
		return constants.BillTypeMix
	case gasCount > 0:
		return constants.BillTypeGas
	case electricityCount > 0:
		return constants.BillTypeLuce
	default:
		return constants.BillTypeUnknown
	}
}
