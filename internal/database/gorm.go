package database

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormOptions tunes the ORM session built on top of the pool.
type GormOptions struct {
	SlowQueryThreshold time.Duration
}

// OpenGorm builds a gorm session that borrows connections from pool.
// Closing the pool releases every connection gorm handed out.
func OpenGorm(pool *pgxpool.Pool, opts GormOptions, logger zerolog.Logger) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         NewGormLogger(logger, opts.SlowQueryThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return db, nil
}

// Migrate creates the category and product tables, their indexes and the
// foreign key when they do not exist yet. It never drops or rewrites data.
func Migrate(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	logger.Info().Msg("database schema is up to date")
	return nil
}

// Ping verifies the database behind db is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
