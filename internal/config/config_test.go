package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "kitchen-garden", cfg.AppName)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, DefaultPlotCount, cfg.PlotCount)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "garden-test")
	t.Setenv("PLOT_COUNT", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "garden-test", cfg.AppName)
	assert.Equal(t, 8, cfg.PlotCount)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PlotCountNotANumber(t *testing.T) {
	t.Setenv("PLOT_COUNT", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PlotCountOutOfRange(t *testing.T) {
	t.Setenv("PLOT_COUNT", "2")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PLOT_COUNT", "50")
	_, err = Load()
	assert.Error(t, err)
}
