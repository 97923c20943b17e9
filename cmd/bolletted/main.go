package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/bollettelab/bollette-tracker/gen/proto/bills/v1"
	"github.com/bollettelab/bollette-tracker/internal/async"
	"github.com/bollettelab/bollette-tracker/internal/common"
	"github.com/bollettelab/bollette-tracker/internal/export"
	"github.com/bollettelab/bollette-tracker/internal/notify"
	"github.com/bollettelab/bollette-tracker/internal/ocr"
	"github.com/bollettelab/bollette-tracker/internal/pipeline"
	"github.com/bollettelab/bollette-tracker/internal/repository"
	"github.com/bollettelab/bollette-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	defer func() { _ = entc.Close() }()

	billsRepo := repository.NewBillRepository(entc, logger)
	subsRepo := repository.NewSubmissionRepository(entc, logger)

	ocrCfg := ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Lang:        cfg.OCR.Lang,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		TessdataDir: cfg.OCR.TessdataDir,
	}
	enginePool := ocr.NewEnginePool(cfg.OCR.MaxWorkers)
	extractor := ocr.NewPageExtractor(ocrCfg, enginePool, logger)
	raster := ocr.NewRasterizer(ocrCfg, logger)
	coordinator := pipeline.NewCoordinator(extractor, raster, logger)

	notifier := notify.NewNotifier(notify.Config{
		GatewayURL: cfg.SMS.GatewayURL,
		Token:      cfg.SMS.Token,
		Sender:     cfg.SMS.Sender,
		Timeout:    cfg.SMS.Timeout,
	}, logger)
	notifyQueue := async.NewNotifyQueue(notifier, subsRepo, logger)

	exporter := export.NewService(billsRepo, logger)
	svc := server.NewBillsService(
		coordinator, billsRepo, subsRepo, exporter, notifyQueue, logger,
		cfg.OCR.ArtifactCacheDir, cfg.Server.BatchTimeout,
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	v1.RegisterBillsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "ocr_workers", enginePool.Size())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	notifyQueue.Shutdown(drainCtx)
	cancel()
	logger.Info("stopped")
}
