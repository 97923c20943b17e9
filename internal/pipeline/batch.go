package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// Coordinator fans a submission's pages out over the OCR engine pool and
// collects one DocumentResult per input document, in input order. It applies
// no acceptance policy of its own: deciding whether a partially-UNKNOWN batch
// is good enough belongs to the caller.
type Coordinator struct {
	recognizer PageRecognizer
	raster     Rasterizer
	logger     *slog.Logger
}

func NewCoordinator(recognizer PageRecognizer, raster Rasterizer, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{recognizer: recognizer, raster: raster, logger: logger}
}

// ProcessBatch runs the full pipeline for every document of one submission.
//
// Pages are recognized concurrently across all documents; the engine pool
// bounds how many OCR calls are actually in flight. The returned BatchResult
// always holds len(docs) entries in input order: a ctx deadline or total OCR
// failure resolves the affected documents to UNKNOWN with a nil cost instead
// of dropping them.
//
// The only error path is a document with an unsupported media kind, which is
// a caller bug — the upload boundary maps MIME types before handing bytes in.
func (c *Coordinator) ProcessBatch(ctx context.Context, docs []entity.Document) (entity.BatchResult, error) {
	for _, doc := range docs {
		if doc.MediaKind != constants.IMAGE && doc.MediaKind != constants.PDF {
			return entity.BatchResult{}, fmt.Errorf("%w: %q (%s)", common.ErrUnsupportedMedia, doc.MediaKind, doc.Filename)
		}
	}

	pageResults := make([][]entity.PageResult, len(docs))
	docWarnings := make([][]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		c.logger.Debug("document state", "document", doc.Filename, "state", constants.DocStatusPending)
		g.Go(func() error {
			pages, cleanup, warns, err := splitPages(gctx, c.raster, doc, c.logger)
			defer cleanup()
			if err != nil {
				return err
			}
			docWarnings[i] = warns

			c.logger.Debug("document state", "document", doc.Filename, "state", constants.DocStatusExtracting, "pages", len(pages))
			results := make([]entity.PageResult, len(pages))
			var wg sync.WaitGroup
			for j, pagePath := range pages {
				wg.Add(1)
				go func() {
					defer wg.Done()
					results[j] = c.recognizer.ExtractPage(gctx, pagePath, j)
				}()
			}
			wg.Wait()
			pageResults[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// only the precondition error reaches here; recognition failures
		// are absorbed into empty page results
		return entity.BatchResult{}, err
	}

	batch := entity.BatchResult{Documents: make([]entity.DocumentResult, len(docs))}
	for i, doc := range docs {
		res := resolveDocument(doc, pageResults[i], docWarnings[i], c.logger)
		batch.Documents[i] = res

		switch {
		case res.BillType == constants.BillTypeUnknown:
			batch.Warnings = append(batch.Warnings,
				fmt.Sprintf("document %d (%s): bill type could not be determined", i+1, doc.Filename))
		case res.CostPerUnit == nil:
			batch.Warnings = append(batch.Warnings,
				fmt.Sprintf("document %d (%s): no cost per unit found", i+1, doc.Filename))
		}
	}

	c.logger.Info("batch complete",
		"documents", len(batch.Documents),
		"warnings", len(batch.Warnings),
	)
	return batch, nil
}
