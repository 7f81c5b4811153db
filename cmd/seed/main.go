package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	"product-catalog/internal/repository"
	"product-catalog/internal/seed"
	"product-catalog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	db, err := database.OpenGorm(pool, database.GormOptions{
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize ORM: %w", err)
	}

	if err := database.Migrate(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	store := repository.NewStore(db, logger)
	result, err := seed.Run(ctx, seed.Sample(),
		service.NewCategoryService(store, logger),
		service.NewProductService(store, logger),
		logger,
	)
	if err != nil {
		return err
	}

	logger.Info().
		Int("categories_created", result.CategoriesCreated).
		Int("products_created", result.ProductsCreated).
		Msg("seed completed")

	return nil
}
