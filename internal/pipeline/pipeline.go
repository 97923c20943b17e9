package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// PageRecognizer is satisfied by *ocr.PageExtractor. Recognition never fails:
// a broken page comes back as empty text with zero confidence.
type PageRecognizer interface {
	ExtractPage(ctx context.Context, imagePath string, pageIndex int) entity.PageResult
}

// Rasterizer is satisfied by ocr.Rasterizer.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string) (pages []string, cleanup func(), err error)
}

// splitPages resolves a document into per-page image paths. Images are a
// single page; PDFs go through the rasterizer. A rasterization failure is
// reported as a warning, not an error: the document will simply have no
// recognizable pages and resolve to UNKNOWN downstream.
func splitPages(ctx context.Context, raster Rasterizer, doc entity.Document, logger *slog.Logger) (pages []string, cleanup func(), warnings []string, err error) {
	switch doc.MediaKind {
	case constants.IMAGE:
		return []string{doc.SourcePath}, func() {}, nil, nil
	case constants.PDF:
		pages, cleanup, rerr := raster.Rasterize(ctx, doc.SourcePath)
		if rerr != nil {
			logger.Warn("pdf rasterization failed", "document", doc.Filename, "error", rerr)
			return nil, cleanup, []string{fmt.Sprintf("rasterization failed: %v", rerr)}, nil
		}
		return pages, cleanup, nil, nil
	default:
		// precondition violation, not a runtime OCR problem
		return nil, func() {}, nil, fmt.Errorf("%w: %q", common.ErrUnsupportedMedia, doc.MediaKind)
	}
}

// resolveDocument turns the collected page results into the document's final
// outcome: merge in page order, classify the whole text, extract the unit
// cost. This is the MERGING -> CLASSIFYING -> DONE tail of the document state
// machine; it cannot fail, only degrade to UNKNOWN.
func resolveDocument(doc entity.Document, pages []entity.PageResult, warnings []string, logger *slog.Logger) entity.DocumentResult {
	logger.Debug("document state", "document", doc.Filename, "state", constants.DocStatusMerging)
	mergedText, meanConf := MergePages(pages)

	logger.Debug("document state", "document", doc.Filename, "state", constants.DocStatusClassifying)
	billType := Classify(mergedText)
	cost := ExtractCostPerUnit(mergedText)

	if doc.TypeHint != "" && doc.TypeHint != constants.BillTypeUnknown && doc.TypeHint != billType {
		// client-side pre-classification is advisory only; the server-side
		// derivation is authoritative
		logger.Info("client hint overridden",
			"document", doc.Filename,
			"hint", doc.TypeHint,
			"derived", billType,
		)
	}

	for _, p := range pages {
		for _, w := range p.Warnings {
			warnings = append(warnings, fmt.Sprintf("page %d: %s", p.PageIndex, w))
		}
	}

	logger.Info("document state",
		"document", doc.Filename,
		"state", constants.DocStatusDone,
		"bill_type", billType,
		"pages", len(pages),
		"mean_confidence", meanConf,
		"cost_found", cost != nil,
	)
	return entity.DocumentResult{
		DocumentID:     doc.ID,
		Filename:       doc.Filename,
		MergedText:     mergedText,
		MeanConfidence: meanConf,
		BillType:       billType,
		CostPerUnit:    cost,
		Warnings:       warnings,
	}
}
