package repository

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the CategoryRepository interface using gorm.
type categoryRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewCategoryRepository creates a new gorm-backed category repository.
func NewCategoryRepository(db *gorm.DB, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// ListAll retrieves every category as an {id, name} projection ordered by id.
func (r *categoryRepository) ListAll(ctx context.Context) ([]model.CategoryView, error) {
	categories := []model.CategoryView{}
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("id", "name").
		Order("id ASC").
		Scan(&categories).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// FindByID retrieves the projection of a single category.
func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*model.CategoryView, error) {
	var categories []model.CategoryView
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("id", "name").
		Where("id = ?", id).
		Limit(1).
		Scan(&categories).Error
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	if len(categories) == 0 {
		r.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, nil
	}

	return &categories[0], nil
}

// Get loads the category entity for mutation.
func (r *categoryRepository) Get(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Take(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to load category")
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	return &category, nil
}

// FindOneByName retrieves the category whose name matches exactly.
func (r *categoryRepository) FindOneByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Take(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to query category by name")
		return nil, fmt.Errorf("failed to query category by name: %w", err)
	}

	return &category, nil
}

// FindOneByNameOrCreate returns the category with the given name, inserting
// it first if needed. The insert is a no-op on a name conflict, in which case
// the row a concurrent writer committed is read back, so every caller sees
// the same category.
func (r *categoryRepository) FindOneByNameOrCreate(ctx context.Context, name string) (*model.Category, error) {
	category, err := r.FindOneByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	category = &model.Category{Name: name}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(category)
	if result.Error != nil {
		r.logger.Error().Err(result.Error).Str("category_name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", result.Error)
	}

	if result.RowsAffected == 1 {
		r.logger.Debug().
			Int64("category_id", category.ID).
			Str("category_name", name).
			Msg("category created on demand")
		return category, nil
	}

	r.logger.Debug().Str("category_name", name).Msg("category created concurrently, reading it back")

	category, err = r.FindOneByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %q vanished after insert conflict", name)
	}

	return category, nil
}

// Create inserts a new category and fills in its generated ID.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn().Str("category_name", category.Name).Msg("category name already taken")
			return model.ErrCategoryExists
		}
		r.logger.Error().Err(err).Str("category_name", category.Name).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().
		Int64("category_id", category.ID).
		Msg("category created successfully")

	return nil
}

// Update persists the category's current name.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	err := r.db.WithContext(ctx).
		Model(category).
		Update("name", category.Name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn().
				Int64("category_id", category.ID).
				Str("category_name", category.Name).
				Msg("category name already taken")
			return model.ErrCategoryExists
		}
		r.logger.Error().Err(err).Int64("category_id", category.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// Delete removes the category.
func (r *categoryRepository) Delete(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Delete(category).Error; err != nil {
		r.logger.Error().Err(err).Int64("category_id", category.ID).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
