package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"testing"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvWordRow(conf, word string) string {
	return fmt.Sprintf("5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t%s\t%s", conf, word)
}

// fakeRunner serves both extractor invocations: the plain OCR call and the
// TSV confidence call, told apart by the trailing "tsv" argument.
type fakeRunner struct {
	text     string
	tsv      string
	ocrErr   error
	tsvErr   error
	tsvCalls atomic.Int64
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		f.tsvCalls.Add(1)
		if f.tsvErr != nil {
			return nil, []byte("tsv boom"), f.tsvErr
		}
		return []byte(f.tsv), nil, nil
	}
	if f.ocrErr != nil {
		return nil, []byte("ocr boom"), f.ocrErr
	}
	return []byte(f.text), nil, nil
}

func newTestExtractor(r Runner) *PageExtractor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewPageExtractor(Config{}, NewEnginePool(2), logger)
	e.runner = r
	return e
}

func TestExtractPageSuccess(t *testing.T) {
	runner := &fakeRunner{
		text: "Consumo  energia\t0,25 €/kWh\r\n",
		tsv:  tsvHeader + "\n" + tsvWordRow("90", "consumo") + "\n",
	}
	e := newTestExtractor(runner)

	res := e.ExtractPage(context.Background(), "page-0.png", 0)
	if res.PageIndex != 0 {
		t.Errorf("page index = %d, want 0", res.PageIndex)
	}
	if res.Text != "Consumo energia 0,25 €/kWh" {
		t.Errorf("text = %q, want normalized text", res.Text)
	}
	// 0.7*90 engine + 0.3*50 heuristic (base 20 + unit price 15 + amount 15)
	if math.Abs(res.Confidence-78) > 0.001 {
		t.Errorf("confidence = %v, want 78", res.Confidence)
	}
}

func TestExtractPageEngineFailure(t *testing.T) {
	runner := &fakeRunner{ocrErr: errors.New("exit status 1")}
	e := newTestExtractor(runner)

	res := e.ExtractPage(context.Background(), "bad.png", 3)
	if res.PageIndex != 3 {
		t.Errorf("page index = %d, want 3", res.PageIndex)
	}
	if res.Text != "" || res.Confidence != 0 {
		t.Errorf("got (%q, %v), want empty page", res.Text, res.Confidence)
	}
	if len(res.Warnings) == 0 {
		t.Error("failed page carries no warnings")
	}
}

func TestExtractPageBlankTextSkipsConfidence(t *testing.T) {
	runner := &fakeRunner{text: "   \n\t  "}
	e := newTestExtractor(runner)

	res := e.ExtractPage(context.Background(), "blank.png", 1)
	if res.Text != "" {
		t.Errorf("text = %q, want empty", res.Text)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 for blank page", res.Confidence)
	}
	if runner.tsvCalls.Load() != 0 {
		t.Errorf("TSV pass ran %d times for a blank page, want 0", runner.tsvCalls.Load())
	}
}

func TestExtractPageTSVFailureFallsBackToHeuristic(t *testing.T) {
	runner := &fakeRunner{
		text:   "POD IT001E12345678 0,25 €/kWh",
		tsvErr: errors.New("exit status 1"),
	}
	e := newTestExtractor(runner)

	res := e.ExtractPage(context.Background(), "page.png", 0)
	// heuristic only: base 20 + supply code 20 + unit price 15 + amount 15
	if math.Abs(res.Confidence-70) > 0.001 {
		t.Errorf("confidence = %v, want heuristic 70", res.Confidence)
	}
	if len(res.Warnings) == 0 {
		t.Error("TSV failure left no warning")
	}
}

func TestExtractPageCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestExtractor(&fakeRunner{text: "energia"})
	res := e.ExtractPage(ctx, "page.png", 5)
	if res.PageIndex != 5 {
		t.Errorf("page index = %d, want 5", res.PageIndex)
	}
	if res.Text != "" || res.Confidence != 0 {
		t.Errorf("got (%q, %v), want empty page after cancellation", res.Text, res.Confidence)
	}
	if len(res.Warnings) == 0 {
		t.Error("canceled page carries no warnings")
	}
}
