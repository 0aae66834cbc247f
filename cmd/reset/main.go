// Command reset wipes the local save and writes a fresh new-player snapshot.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/config"
	"github.com/pipstudio/kitchengarden/internal/logger"
	"github.com/pipstudio/kitchengarden/internal/progress"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "kitchen-garden-reset", cfg.Version, cfg.Environment, false))

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.CatalogPath, err)
		}
	}

	backend, err := progress.NewGdataBackend(cfg.AppName)
	if err != nil {
		log.Fatalf("Failed to open save storage: %v", err)
	}
	store := progress.NewStore(backend, cat, cfg.PlotCount)

	ctx := logger.WithSessionID(context.Background(), logger.GenerateSessionID())
	p, err := store.Reset(ctx)
	if err != nil {
		log.Fatalf("Failed to reset save: %v", err)
	}

	fmt.Println("Save reset to new-player defaults:")
	fmt.Printf("  coins: %d\n", p.Coins)
	fmt.Printf("  level: %d\n", p.Level)
	fmt.Printf("  plots: %d\n", len(p.Plots))
	fmt.Printf("  recipes unlocked: %d\n", len(p.UnlockedRecipes))
}
