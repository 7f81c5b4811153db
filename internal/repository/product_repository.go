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

const productViewColumns = "p.id, c.name AS category, p.name, p.sku, p.price"

// productRepository implements the ProductRepository interface using gorm.
type productRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewProductRepository creates a new gorm-backed product repository.
func NewProductRepository(db *gorm.DB, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// views starts a product/category inner join shaped as ProductView rows.
func (r *productRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("product AS p").
		Select(productViewColumns).
		Joins("INNER JOIN category AS c ON c.id = p.category_id")
}

// ListAll retrieves every product joined to its category, ordered by id.
func (r *productRepository) ListAll(ctx context.Context) ([]model.ProductView, error) {
	products := []model.ProductView{}
	if err := r.views(ctx).Order("p.id ASC").Scan(&products).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return products, nil
}

// FindByID retrieves the joined projection of a single product.
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.ProductView, error) {
	var products []model.ProductView
	err := r.views(ctx).
		Where("p.id = ?", id).
		Limit(1).
		Scan(&products).Error
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	if len(products) == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, nil
	}

	return &products[0], nil
}

// Get loads the product entity, with its category, for mutation.
func (r *productRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Take(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to load product")
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	return &product, nil
}

// Create inserts a new product and fills in its generated ID. The category
// reference is written through CategoryID only; the category row itself is
// never touched.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(product).Error
	if err != nil {
		r.logger.Error().Err(err).Str("sku", product.SKU).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", product.ID).
		Msg("product created successfully")

	return nil
}

// Update persists every column of the product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	err := r.db.WithContext(ctx).
		Model(product).
		Select("category_id", "name", "sku", "price").
		Updates(product).Error
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes the product.
func (r *productRepository) Delete(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Delete(product).Error; err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
