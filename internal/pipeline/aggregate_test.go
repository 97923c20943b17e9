package pipeline

import (
	"testing"

	"github.com/bollettelab/bollette-tracker/internal/entity"
)

func TestMergePagesOrdersByPageIndex(t *testing.T) {
	inOrder := []entity.PageResult{
		{PageIndex: 0, Text: "A", Confidence: 80},
		{PageIndex: 1, Text: "B", Confidence: 60},
	}
	reversed := []entity.PageResult{
		{PageIndex: 1, Text: "B", Confidence: 60},
		{PageIndex: 0, Text: "A", Confidence: 80},
	}

	text1, conf1 := MergePages(inOrder)
	text2, conf2 := MergePages(reversed)

	if text1 != "A\nB" {
		t.Errorf("merged text = %q, want %q", text1, "A\nB")
	}
	if text1 != text2 || conf1 != conf2 {
		t.Errorf("merge is not order independent: (%q, %v) vs (%q, %v)", text1, conf1, text2, conf2)
	}
	if conf1 != 70 {
		t.Errorf("mean confidence = %v, want 70", conf1)
	}
}

func TestMergePagesMeanIncludesFailedPages(t *testing.T) {
	pages := []entity.PageResult{
		{PageIndex: 0, Text: "ok", Confidence: 90},
		{PageIndex: 1, Text: "", Confidence: 0},
		{PageIndex: 2, Text: "ok", Confidence: 60},
	}
	_, conf := MergePages(pages)
	if conf != 50 {
		t.Errorf("mean confidence = %v, want 50 (zero-confidence pages count)", conf)
	}
}

func TestMergePagesEmpty(t *testing.T) {
	text, conf := MergePages(nil)
	if text != "" || conf != 0 {
		t.Errorf("MergePages(nil) = (%q, %v), want (\"\", 0)", text, conf)
	}
}

func TestMergePagesDoesNotMutateInput(t *testing.T) {
	pages := []entity.PageResult{
		{PageIndex: 2, Text: "C"},
		{PageIndex: 0, Text: "A"},
		{PageIndex: 1, Text: "B"},
	}
	_, _ = MergePages(pages)
	if pages[0].PageIndex != 2 {
		t.Error("MergePages reordered the caller's slice")
	}
}
