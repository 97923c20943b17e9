package constants

import (
	"strings"
)

// BillType is the canonical classification of a utility document.
type BillType string

// Stable values (store these exact strings in DB).
const (
	BillTypeLuce    BillType = "LUCE"    // electricity
	BillTypeGas     BillType = "GAS"     // natural gas
	BillTypeMix     BillType = "MIX"     // combined electricity + gas
	BillTypeUnknown BillType = "UNKNOWN" // could not be classified
)

var allBillTypes = []BillType{
	BillTypeLuce,
	BillTypeGas,
	BillTypeMix,
	BillTypeUnknown,
}

func BillTypesAsStrings() []string {
	result := make([]string, len(allBillTypes))
	for i, bt := range allBillTypes {
		result[i] = string(bt)
	}
	return result
}

// CanonicalizeBillType maps free-form client labels onto a canonical BillType.
// Client-side hints arrive from browser OCR and are advisory only, so unknown
// labels fold into UNKNOWN rather than failing the request.
func CanonicalizeBillType(input string) (BillType, bool) {
	if input == "" {
		return BillTypeUnknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]BillType{
		"elettricita":       BillTypeLuce,
		"elettricità":       BillTypeLuce,
		"energia":           BillTypeLuce,
		"energia elettrica": BillTypeLuce,
		"electricity":       BillTypeLuce,
		"metano":            BillTypeGas,
		"gas naturale":      BillTypeGas,
		"dual":              BillTypeMix,
		"dual fuel":         BillTypeMix,
		"combined":          BillTypeMix,
	}

	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}

	for _, bt := range allBillTypes {
		if normalized == strings.ToLower(string(bt)) {
			return bt, true
		}
	}

	return BillTypeUnknown, false
}
