package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

type fakePage struct {
	text string
	conf float64
}

// fakeRecognizer resolves page image paths to canned results. Unknown paths
// and canceled contexts degrade to an empty page, like the real extractor.
type fakeRecognizer struct {
	pages map[string]fakePage
	delay time.Duration
	calls atomic.Int64
}

func (f *fakeRecognizer) ExtractPage(ctx context.Context, imagePath string, pageIndex int) entity.PageResult {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return entity.PageResult{PageIndex: pageIndex, Warnings: []string{ctx.Err().Error()}}
		}
	}
	if ctx.Err() != nil {
		return entity.PageResult{PageIndex: pageIndex, Warnings: []string{ctx.Err().Error()}}
	}
	p, ok := f.pages[imagePath]
	if !ok {
		return entity.PageResult{PageIndex: pageIndex, Warnings: []string{"recognition failed"}}
	}
	return entity.PageResult{PageIndex: pageIndex, Text: p.text, Confidence: p.conf}
}

type fakeRasterizer struct {
	pages    map[string][]string
	err      error
	cleanups atomic.Int64
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, pdfPath string) ([]string, func(), error) {
	cleanup := func() { f.cleanups.Add(1) }
	if f.err != nil {
		return nil, cleanup, f.err
	}
	return f.pages[pdfPath], cleanup, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func imageDoc(name, path string) entity.Document {
	return entity.Document{
		ID:         uuid.New(),
		Filename:   name,
		MediaKind:  constants.IMAGE,
		SourcePath: path,
		TypeHint:   constants.BillTypeUnknown,
	}
}

func TestProcessBatchClassifiesAndWarns(t *testing.T) {
	rec := &fakeRecognizer{pages: map[string]fakePage{
		"luce.png":  {text: "Consumo energia elettrica: 0,30 €/kWh", conf: 90},
		"blank.png": {text: "", conf: 0},
	}}
	c := NewCoordinator(rec, &fakeRasterizer{}, testLogger())

	docs := []entity.Document{
		imageDoc("luce.png", "luce.png"),
		imageDoc("blank.png", "blank.png"),
	}
	batch, err := c.ProcessBatch(context.Background(), docs)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(batch.Documents) != 2 {
		t.Fatalf("got %d results, want 2", len(batch.Documents))
	}

	first := batch.Documents[0]
	if first.BillType != constants.BillTypeLuce {
		t.Errorf("doc 1 bill type = %s, want LUCE", first.BillType)
	}
	if first.CostPerUnit == nil || *first.CostPerUnit != 0.30 {
		t.Errorf("doc 1 cost = %v, want 0.30", first.CostPerUnit)
	}
	if first.MeanConfidence != 90 {
		t.Errorf("doc 1 confidence = %v, want 90", first.MeanConfidence)
	}

	second := batch.Documents[1]
	if second.BillType != constants.BillTypeUnknown {
		t.Errorf("doc 2 bill type = %s, want UNKNOWN", second.BillType)
	}
	if second.CostPerUnit != nil {
		t.Errorf("doc 2 cost = %v, want nil", *second.CostPerUnit)
	}

	if len(batch.Warnings) != 1 {
		t.Fatalf("got %d batch warnings, want 1: %v", len(batch.Warnings), batch.Warnings)
	}
	if !strings.Contains(batch.Warnings[0], "document 2") || !strings.Contains(batch.Warnings[0], "blank.png") {
		t.Errorf("warning does not reference the failed document: %q", batch.Warnings[0])
	}
}

func TestProcessBatchPreservesInputOrder(t *testing.T) {
	// the first document is slow; its result must still come first
	rec := &fakeRecognizer{
		pages: map[string]fakePage{
			"slow.png": {text: "fornitura gas 1,10 €/mc", conf: 80},
			"fast.png": {text: "energia elettrica 0,25 €/kWh", conf: 80},
		},
		delay: 20 * time.Millisecond,
	}
	c := NewCoordinator(rec, &fakeRasterizer{}, testLogger())

	docs := []entity.Document{
		imageDoc("slow.png", "slow.png"),
		imageDoc("fast.png", "fast.png"),
	}
	batch, err := c.ProcessBatch(context.Background(), docs)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if batch.Documents[0].Filename != "slow.png" || batch.Documents[0].BillType != constants.BillTypeGas {
		t.Errorf("doc 1 = (%s, %s), want (slow.png, GAS)", batch.Documents[0].Filename, batch.Documents[0].BillType)
	}
	if batch.Documents[1].Filename != "fast.png" || batch.Documents[1].BillType != constants.BillTypeLuce {
		t.Errorf("doc 2 = (%s, %s), want (fast.png, LUCE)", batch.Documents[1].Filename, batch.Documents[1].BillType)
	}
}

func TestProcessBatchMergesPDFPagesInOrder(t *testing.T) {
	raster := &fakeRasterizer{pages: map[string][]string{
		"bill.pdf": {"p0.png", "p1.png"},
	}}
	rec := &fakeRecognizer{pages: map[string]fakePage{
		"p0.png": {text: "pagina uno energia elettrica", conf: 70},
		"p1.png": {text: "pagina due 0,25 €/kWh", conf: 90},
	}}
	c := NewCoordinator(rec, raster, testLogger())

	doc := entity.Document{
		ID:         uuid.New(),
		Filename:   "bill.pdf",
		MediaKind:  constants.PDF,
		SourcePath: "bill.pdf",
		TypeHint:   constants.BillTypeUnknown,
	}
	batch, err := c.ProcessBatch(context.Background(), []entity.Document{doc})
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}

	res := batch.Documents[0]
	if !strings.HasPrefix(res.MergedText, "pagina uno") || !strings.Contains(res.MergedText, "pagina due") {
		t.Errorf("merged text out of order: %q", res.MergedText)
	}
	if res.MeanConfidence != 80 {
		t.Errorf("mean confidence = %v, want 80", res.MeanConfidence)
	}
	if res.CostPerUnit == nil || *res.CostPerUnit != 0.25 {
		t.Errorf("cost = %v, want 0.25", res.CostPerUnit)
	}
	if raster.cleanups.Load() != 1 {
		t.Errorf("rasterizer cleanup ran %d times, want 1", raster.cleanups.Load())
	}
}

func TestProcessBatchRasterFailureDegradesToUnknown(t *testing.T) {
	raster := &fakeRasterizer{err: errors.New("pdftoppm exited 1")}
	c := NewCoordinator(&fakeRecognizer{}, raster, testLogger())

	doc := entity.Document{
		ID:         uuid.New(),
		Filename:   "corrupt.pdf",
		MediaKind:  constants.PDF,
		SourcePath: "corrupt.pdf",
	}
	batch, err := c.ProcessBatch(context.Background(), []entity.Document{doc})
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(batch.Documents) != 1 {
		t.Fatalf("got %d results, want 1", len(batch.Documents))
	}
	res := batch.Documents[0]
	if res.BillType != constants.BillTypeUnknown || res.CostPerUnit != nil {
		t.Errorf("got (%s, %v), want (UNKNOWN, nil)", res.BillType, res.CostPerUnit)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "rasterization") {
			found = true
		}
	}
	if !found {
		t.Errorf("no rasterization warning in %v", res.Warnings)
	}
	if raster.cleanups.Load() != 1 {
		t.Errorf("cleanup ran %d times, want 1", raster.cleanups.Load())
	}
}

func TestProcessBatchAllPagesFailedKeepsEveryDocument(t *testing.T) {
	rec := &fakeRecognizer{} // every path unknown -> recognition failed
	c := NewCoordinator(rec, &fakeRasterizer{}, testLogger())

	docs := []entity.Document{
		imageDoc("a.png", "a.png"),
		imageDoc("b.png", "b.png"),
		imageDoc("c.png", "c.png"),
	}
	batch, err := c.ProcessBatch(context.Background(), docs)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(batch.Documents) != len(docs) {
		t.Fatalf("got %d results, want %d", len(batch.Documents), len(docs))
	}
	for i, res := range batch.Documents {
		if res.BillType != constants.BillTypeUnknown {
			t.Errorf("doc %d bill type = %s, want UNKNOWN", i+1, res.BillType)
		}
		if len(res.Warnings) == 0 {
			t.Errorf("doc %d has no page warnings", i+1)
		}
	}
	if len(batch.Warnings) != len(docs) {
		t.Errorf("got %d batch warnings, want %d", len(batch.Warnings), len(docs))
	}
}

func TestProcessBatchUnsupportedMediaKind(t *testing.T) {
	c := NewCoordinator(&fakeRecognizer{}, &fakeRasterizer{}, testLogger())

	docs := []entity.Document{
		{ID: uuid.New(), Filename: "notes.txt", MediaKind: "TEXT", SourcePath: "notes.txt"},
	}
	_, err := c.ProcessBatch(context.Background(), docs)
	if err == nil {
		t.Fatal("ProcessBatch accepted an unsupported media kind")
	}
	if !errors.Is(err, common.ErrUnsupportedMedia) {
		t.Errorf("err = %v, want ErrUnsupportedMedia", err)
	}
}

func TestProcessBatchCanceledContextResolvesAllDocuments(t *testing.T) {
	rec := &fakeRecognizer{pages: map[string]fakePage{
		"a.png": {text: "energia elettrica", conf: 90},
	}}
	c := NewCoordinator(rec, &fakeRasterizer{}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []entity.Document{
		imageDoc("a.png", "a.png"),
		imageDoc("b.png", "b.png"),
	}
	batch, err := c.ProcessBatch(ctx, docs)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(batch.Documents) != 2 {
		t.Fatalf("got %d results, want 2", len(batch.Documents))
	}
	for i, res := range batch.Documents {
		if res.BillType != constants.BillTypeUnknown {
			t.Errorf("doc %d bill type = %s, want UNKNOWN after cancellation", i+1, res.BillType)
		}
	}
}
