package repository

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// store implements Store on top of a gorm session, which is either the
// root connection pool or a transaction.
type store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewStore creates a new gorm-backed store.
func NewStore(db *gorm.DB, logger zerolog.Logger) Store {
	return &store{
		db:     db,
		logger: logger,
	}
}

func (s *store) Categories() CategoryRepository {
	return NewCategoryRepository(s.db, s.logger)
}

func (s *store) Products() ProductRepository {
	return NewProductRepository(s.db, s.logger)
}

// WithinTx runs fn inside a transaction. Nested calls reuse gorm's
// savepoint support.
func (s *store) WithinTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx, logger: s.logger})
	})
}
