package api

import (
	"os"
	"strconv"
	"time"

	pdfPkg "pdf_extractor/pdf"
)

const (
	// DefaultMaxFileSize is the default maximum upload size (10MB)
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultPort is the default server port
	DefaultPort = "8080"

	// DefaultTempDir is the default temporary directory
	DefaultTempDir = "./temp"

	// FileCleanupDelay is the delay before cleaning up temp files after the response is sent
	FileCleanupDelay = 2 * time.Second

	// AnalysisCleanupDelay is the delay before cleaning up inspection temp files
	AnalysisCleanupDelay = 1 * time.Second

	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755
)

// Config holds application configuration
type Config struct {
	Port        string
	MaxFileSize int64
	TempDir     string
	InputDir    string
	OutputDir   string
}

// LoadConfig reads configuration from environment variables with defaults.
func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", DefaultPort),
		MaxFileSize: getEnvInt64("MAX_FILE_SIZE", DefaultMaxFileSize),
		TempDir:     getEnv("TEMP_DIR", DefaultTempDir),
		InputDir:    getEnv("PDF_INPUT_DIR", pdfPkg.DefaultInputDir),
		OutputDir:   getEnv("PDF_OUTPUT_DIR", pdfPkg.DefaultOutputDir),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
