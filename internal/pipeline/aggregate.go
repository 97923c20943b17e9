package pipeline

import (
	"sort"
	"strings"

	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// MergePages combines per-page OCR results into one document text plus a mean
// confidence. Pages are sorted by PageIndex before joining, so the merged text
// is stable regardless of the order in which concurrent extraction finished.
// The mean includes zero-confidence pages: a single failed page degrades the
// document's confidence but does not null it out.
func MergePages(pages []entity.PageResult) (mergedText string, meanConfidence float64) {
	if len(pages) == 0 {
		return "", 0
	}

	ordered := make([]entity.PageResult, len(pages))
	copy(ordered, pages)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PageIndex < ordered[j].PageIndex })

	texts := make([]string, len(ordered))
	var sum float64
	for i, p := range ordered {
		texts[i] = p.Text
		sum += p.Confidence
	}
	return strings.Join(texts, "\n"), sum / float64(len(ordered))
}
