package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	SQLitePath     string
	MigrationsDir  string
	OutputDir      string
	Environment    string
	MetricsEnabled bool
	PDFPageSize    string
	PDFOrientation string
	PDFFontFamily  string
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", ""),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
		OutputDir:      getEnv("REPORT_OUTPUT_DIR", defaultOutputDir()),
		Environment:    getEnv("APP_ENV", "development"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		PDFPageSize:    getEnv("PDF_PAGE_SIZE", "A4"),
		PDFOrientation: getEnv("PDF_ORIENTATION", "P"),
		PDFFontFamily:  getEnv("PDF_FONT_FAMILY", "Helvetica"),
	}
}

// defaultOutputDir mirrors the desktop origin of the tool: reports land in
// the user's Documents folder unless configured otherwise.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storage/reports"
	}
	return filepath.Join(home, "Documents")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" && strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("DATABASE_URL or SQLITE_PATH is required")
	}
	if strings.TrimSpace(c.DatabaseURL) != "" && strings.TrimSpace(c.SQLitePath) != "" {
		return fmt.Errorf("DATABASE_URL and SQLITE_PATH are mutually exclusive")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("REPORT_OUTPUT_DIR must not be empty")
	}
	switch c.PDFOrientation {
	case "P", "L":
	default:
		return fmt.Errorf("PDF_ORIENTATION must be P or L")
	}
	return nil
}
