package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	SMS      SMSConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr     string
	BatchTimeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract        string
	Pdftoppm         string
	Lang             string
	DPI              int
	MaxPages         int
	MaxWorkers       int
	TessdataDir      string
	ArtifactCacheDir string
}

// SMSConfig holds SMS gateway configuration
type SMSConfig struct {
	GatewayURL string
	Token      string
	Sender     string
	Timeout    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:     getEnv("GRPC_ADDR", ":8080"),
			BatchTimeout: getEnvAsDuration("BATCH_TIMEOUT", 2*time.Minute),
		},
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:         getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Lang:             getEnv("TESSERACT_LANG", "ita+eng"),
			DPI:              getEnvAsInt("OCR_DPI", 300),
			MaxPages:         getEnvAsInt("OCR_MAX_PAGES", 0),
			MaxWorkers:       getEnvAsInt("OCR_MAX_WORKERS", 4),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		SMS: SMSConfig{
			GatewayURL: getEnv("SMS_GATEWAY_URL", ""),
			Token:      getEnv("SMS_GATEWAY_TOKEN", ""),
			Sender:     getEnv("SMS_SENDER", "BolletteTracker"),
			Timeout:    getEnvAsDuration("SMS_TIMEOUT", 10*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.MaxWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
