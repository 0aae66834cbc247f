package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	AppName     string // Storage namespace for the local save
	CatalogPath string // Optional override for the catalog file; empty uses the embedded catalog
	PlotCount   int    // Number of garden plots for new players
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppName:     getEnv("APP_NAME", "kitchen-garden"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
	}

	plotsStr := getEnv("PLOT_COUNT", strconv.Itoa(DefaultPlotCount))
	plots, err := strconv.Atoi(plotsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PLOT_COUNT value: %w", err)
	}
	if plots < MinPlotCount || plots > MaxPlotCount {
		return nil, fmt.Errorf("PLOT_COUNT must be between %d and %d, got %d", MinPlotCount, MaxPlotCount, plots)
	}
	cfg.PlotCount = plots

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
