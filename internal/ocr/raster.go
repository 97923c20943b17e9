package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Rasterizer converts each page of a PDF into an image the engine can read.
type Rasterizer interface {
	// Rasterize returns the rendered page image paths in page order plus a
	// cleanup func for the backing temp dir. cleanup is non-nil even on error.
	Rasterize(ctx context.Context, pdfPath string) (pages []string, cleanup func(), err error)
}

type pdftoppmRasterizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRasterizer(cfg Config, logger *slog.Logger) Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &pdftoppmRasterizer{cfg: cfg.withDefaults(), runner: newExecRunner(logger), logger: logger}
}

func (r *pdftoppmRasterizer) Rasterize(ctx context.Context, pdfPath string) ([]string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "bt-pp-*")
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			r.logger.Warn("failed to remove raster temp dir", "dir", tmpDir, "error", err)
		}
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return nil, cleanup, fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, cleanup, fmt.Errorf("pdftoppm produced no images for %s", filepath.Base(pdfPath))
	}
	return matches, cleanup, nil
}
