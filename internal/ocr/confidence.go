package ocr

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePodPdr    = regexp.MustCompile(`\b(it\d{3}e\d+|pod|pdr)\b`)
	reEuroUnit  = regexp.MustCompile(`(€|eur)\s*/?\s*(kwh|kw|mc|m³)`)
	reEuroValue = regexp.MustCompile(`\b\d+[.,]\d{2,}\b`)
)

func hasSupplyCodePattern(s string) bool { return rePodPdr.MatchString(s) }
func hasUnitPricePattern(s string) bool  { return reEuroUnit.MatchString(s) }
func hasAmountPattern(s string) bool     { return reEuroValue.MatchString(s) }

// heuristicConfidence estimates recognition quality (0..100) from utility-bill
// artifacts: supply point codes (POD/PDR), unit prices, euro amounts.
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 20.0 // base
	if hasSupplyCodePattern(txtL) {
		score += 20
	}
	if hasUnitPricePattern(txtL) {
		score += 15
	}
	if hasAmountPattern(txtL) {
		score += 15
	}
	if len(txt) > 120 {
		score += 10
	} // enough content
	if score > 100 {
		score = 100
	}
	return score
}

// tsvMeanConfidence parses tesseract TSV output and returns the mean word
// confidence on the engine's 0..100 scale. Returns 0 when no word rows carry
// a confidence value.
func tsvMeanConfidence(tsv string) float64 {
	lines := strings.Split(tsv, "\n")
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		// conf is column 11; the word text follows it
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}
