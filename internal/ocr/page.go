package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bollettelab/bollette-tracker/internal/entity"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	// Lang is the engine language hint. Italian bills carry English loan
	// terms (kWh, gas), so the combined pack is the default.
	Lang     string
	DPI      int // rasterization DPI for scanned PDFs, default 300
	MaxPages int // 0 = no limit

	TessdataDir string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

func (c Config) withDefaults() Config {
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Lang == "" {
		c.Lang = "ita+eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	return c
}

// PageExtractor drives the OCR engine for one rasterized page at a time.
type PageExtractor struct {
	cfg    Config
	runner Runner
	pool   *EnginePool
	logger *slog.Logger
}

func NewPageExtractor(cfg Config, pool *EnginePool, logger *slog.Logger) *PageExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if pool == nil {
		pool = NewEnginePool(0)
	}
	return &PageExtractor{cfg: cfg.withDefaults(), runner: newExecRunner(logger), pool: pool, logger: logger}
}

// ExtractPage recognizes one page image and returns its PageResult.
// Engine failures (timeout, crash, unreadable image) never propagate: the
// page degrades to empty text with zero confidence and the cause is kept in
// Warnings for observability.
func (e *PageExtractor) ExtractPage(ctx context.Context, imagePath string, pageIndex int) entity.PageResult {
	if err := e.pool.Acquire(ctx); err != nil {
		e.logger.Warn("ocr engine acquire aborted", "page", pageIndex, "error", err)
		return failedPage(pageIndex, fmt.Sprintf("engine acquire: %v", err))
	}
	defer e.pool.Release()

	txt, warns, err := e.tesseractOCR(ctx, imagePath)
	if err != nil {
		e.logger.Warn("page recognition failed", "page", pageIndex, "path", imagePath, "error", err)
		return failedPage(pageIndex, append(warns, err.Error())...)
	}
	txt = Normalize(txt)

	var conf float64
	if strings.TrimSpace(txt) != "" {
		ocrConf, w, err := e.tesseractTSVConfidence(ctx, imagePath)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
		}
		heurConf := heuristicConfidence(txt)
		// blend: weight the engine's own estimate higher when present
		if ocrConf > 0 {
			conf = 0.7*ocrConf + 0.3*heurConf
		} else {
			conf = heurConf
		}
		if conf > 100 {
			conf = 100
		}
	}

	e.logger.Debug("page recognized",
		"page", pageIndex,
		"text_bytes", len(txt),
		"confidence", conf,
	)
	return entity.PageResult{
		PageIndex:  pageIndex,
		Text:       txt,
		Confidence: conf,
		Warnings:   warns,
	}
}

func failedPage(pageIndex int, warnings ...string) entity.PageResult {
	return entity.PageResult{PageIndex: pageIndex, Warnings: warnings}
}

func (e *PageExtractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns the mean word
// confidence on the engine's 0..100 scale.
func (e *PageExtractor) tesseractTSVConfidence(ctx context.Context, path string) (float64, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV output
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	return tsvMeanConfidence(string(out)), nil, nil
}
