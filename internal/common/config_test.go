package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.Server.BatchTimeout != 2*time.Minute {
		t.Errorf("BatchTimeout = %v, want 2m", cfg.Server.BatchTimeout)
	}
	if cfg.OCR.Lang != "ita+eng" {
		t.Errorf("Lang = %q, want ita+eng", cfg.OCR.Lang)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.OCR.DPI)
	}
	if cfg.OCR.MaxWorkers != 4 {
		t.Errorf("MaxWorkers = %d, want 4", cfg.OCR.MaxWorkers)
	}
	if cfg.SMS.Sender != "BolletteTracker" {
		t.Errorf("Sender = %q, want BolletteTracker", cfg.SMS.Sender)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9000")
	t.Setenv("OCR_MAX_WORKERS", "8")
	t.Setenv("BATCH_TIMEOUT", "30s")
	t.Setenv("DB_MAX_CONNS", "50")

	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":9000" {
		t.Errorf("GRPCAddr = %q, want :9000", cfg.Server.GRPCAddr)
	}
	if cfg.OCR.MaxWorkers != 8 {
		t.Errorf("MaxWorkers = %d, want 8", cfg.OCR.MaxWorkers)
	}
	if cfg.Server.BatchTimeout != 30*time.Second {
		t.Errorf("BatchTimeout = %v, want 30s", cfg.Server.BatchTimeout)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("MaxConns = %d, want 50", cfg.Database.MaxConns)
	}
}

func TestLoadConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("OCR_DPI", "not-a-number")
	t.Setenv("BATCH_TIMEOUT", "soon")

	cfg := LoadConfig()
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d, want default 300", cfg.OCR.DPI)
	}
	if cfg.Server.BatchTimeout != 2*time.Minute {
		t.Errorf("BatchTimeout = %v, want default 2m", cfg.Server.BatchTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/bills"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
		OCR:      OCRConfig{MaxWorkers: 4},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missingDSN := *valid
	missingDSN.Database.DSN = ""
	if err := missingDSN.Validate(); err == nil {
		t.Error("Validate accepted empty DB_URL")
	}

	noWorkers := *valid
	noWorkers.OCR.MaxWorkers = 0
	if err := noWorkers.Validate(); err == nil {
		t.Error("Validate accepted zero OCR workers")
	}
}
