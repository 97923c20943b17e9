// billscan classifies local bill scans without a server: it runs the same
// OCR + classification pipeline over files given on the command line, prints
// the outcome, and can persist to a throwaway sqlite file and export XLSX.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/entity"
	"github.com/bollettelab/bollette-tracker/internal/export"
	"github.com/bollettelab/bollette-tracker/internal/ocr"
	"github.com/bollettelab/bollette-tracker/internal/pipeline"
	"github.com/bollettelab/bollette-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dbPath  = flag.String("db", "", "sqlite file to persist results to (optional)")
		out     = flag.String("out", "", "output XLSX file path (requires --db)")
		phone   = flag.String("phone", "local", "phone number to record results under")
		lang    = flag.String("lang", "ita+eng", "tesseract language pack")
		workers = flag.Int("workers", 4, "max concurrent OCR workers")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall processing timeout")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		printError("Usage: billscan [flags] <file.pdf|file.jpg> ...\n")
		os.Exit(1)
	}
	if *out != "" && *dbPath == "" {
		printError("Error: --out requires --db\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	docs := make([]entity.Document, 0, len(files))
	for _, path := range files {
		kind := constants.MapExtToKind(filepath.Ext(path))
		if kind == "" {
			printError("Error: unsupported file type: %s\n", path)
			os.Exit(1)
		}
		if _, err := os.Stat(path); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		docs = append(docs, entity.Document{
			ID:         uuid.New(),
			Filename:   filepath.Base(path),
			MediaKind:  kind,
			SourcePath: path,
			TypeHint:   constants.BillTypeUnknown,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ocrCfg := ocr.Config{Lang: *lang}
	enginePool := ocr.NewEnginePool(*workers)
	extractor := ocr.NewPageExtractor(ocrCfg, enginePool, logger)
	raster := ocr.NewRasterizer(ocrCfg, logger)
	coordinator := pipeline.NewCoordinator(extractor, raster, logger)

	batch, err := coordinator.ProcessBatch(ctx, docs)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	for i, d := range batch.Documents {
		cost := "-"
		if d.CostPerUnit != nil {
			cost = fmt.Sprintf("%.4f", *d.CostPerUnit)
		}
		fmt.Printf("%-30s %-8s cost=%-8s confidence=%.1f\n", docs[i].Filename, d.BillType, cost, d.MeanConfidence)
	}
	for _, w := range batch.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if *dbPath == "" {
		return
	}

	entc, err := repository.OpenSQLite(ctx, *dbPath, logger)
	if err != nil {
		printError("Error: open sqlite: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	billsRepo := repository.NewBillRepository(entc, logger)
	subsRepo := repository.NewSubmissionRepository(entc, logger)

	sub, err := subsRepo.Create(ctx, *phone, len(batch.Documents), len(batch.Warnings))
	if err != nil {
		printError("Error: persist submission: %v\n", err)
		os.Exit(1)
	}
	for _, res := range batch.Documents {
		if _, err := billsRepo.CreateFromResult(ctx, &repository.CreateBillRequest{
			SubmissionID: sub.ID,
			Phone:        *phone,
			Result:       res,
		}); err != nil {
			printError("Error: persist bill: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Info("results persisted", "db", *dbPath, "submission_id", sub.ID)

	if *out != "" {
		exporter := export.NewService(billsRepo, logger)
		xlsx, err := exporter.ExportBillsXLSX(ctx, *phone, nil, nil)
		if err != nil {
			printError("Error: export: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
			printError("Error: write %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s\n", *out)
	}
}
