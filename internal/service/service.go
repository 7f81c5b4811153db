package service

import (
	"context"

	"product-catalog/internal/model"
)

// CategoryService defines operations for category management.
type CategoryService interface {
	// GetAll retrieves every category.
	GetAll(ctx context.Context) ([]model.CategoryView, error)

	// GetByID retrieves a single category. Returns model.ErrCategoryNotFound
	// when absent.
	GetByID(ctx context.Context, id int64) (*model.CategoryView, error)

	// Add validates and persists a new category, returning its ID.
	Add(ctx context.Context, payload *model.CategoryPayload) (int64, error)

	// Update renames an existing category, returning its ID.
	Update(ctx context.Context, id int64, payload *model.CategoryPayload) (int64, error)

	// Delete removes a category. Returns model.ErrCategoryNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// Validate checks the shape of a category payload.
	Validate(payload *model.CategoryPayload) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// GetAll retrieves every product with its category name.
	GetAll(ctx context.Context) ([]model.ProductView, error)

	// GetByID retrieves a single product. Returns model.ErrProductNotFound
	// when absent.
	GetByID(ctx context.Context, id int64) (*model.ProductView, error)

	// Add creates a product, creating its category on demand, and returns
	// the new product ID.
	Add(ctx context.Context, payload *model.ProductPayload) (int64, error)

	// Update applies a partial update: only fields present in the payload
	// change.
	Update(ctx context.Context, id int64, payload *model.ProductPayload) (int64, error)

	// Delete removes a product. Returns model.ErrProductNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// Validate checks that every field present in the payload is non-blank.
	Validate(payload *model.ProductPayload) error
}
