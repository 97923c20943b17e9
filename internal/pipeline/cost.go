package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit-price patterns. Each tolerates an optional currency symbol or word on
// either side of the number, a comma or dot decimal separator, and the unit
// spellings seen on scanned bills.
var (
	reKWCost = regexp.MustCompile(`(?i)(?:[€$]\s*)?(\d+(?:[.,]\d+)?)\s*(?:€|\$|eur(?:o)?)?\s*(?:/|per\s+)?\s*(?:kwh|kw)\b`)
	// \b only guards the ASCII spelling: RE2 word boundaries never match
	// after the multibyte ³, so anchoring the whole alternation would make
	// the m³ branch dead.
	reMCCost = regexp.MustCompile(`(?i)(?:[€$]\s*)?(\d+(?:[.,]\d+)?)\s*(?:€|\$|eur(?:o)?)?\s*(?:/|per\s+)?\s*(?:m³|mc\b)`)
)

// ExtractCostPerUnit pulls a normalized cost-per-unit figure out of the merged
// document text. The electricity pattern (€/kW, €/kWh) is tried first; a
// cubic-metre match (€/m³, €/mc) overwrites it when present, since combined
// bills list electricity charges before gas charges. nil means no unit price
// was found, which is a valid outcome and not a failure.
func ExtractCostPerUnit(mergedText string) *float64 {
	var cost *float64
	if v := matchUnitPrice(reKWCost, mergedText); v != nil {
		cost = v
	}
	if v := matchUnitPrice(reMCCost, mergedText); v != nil {
		cost = v
	}
	return cost
}

func matchUnitPrice(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	// decimal comma -> decimal point; currency stays out of the capture group
	raw := strings.ReplaceAll(m[1], ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
