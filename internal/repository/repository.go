package repository

import (
	"context"

	"product-catalog/internal/model"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// ListAll retrieves every category as an {id, name} projection ordered by id.
	ListAll(ctx context.Context) ([]model.CategoryView, error)

	// FindByID retrieves the projection of a single category.
	// Returns nil when no category has the given id.
	FindByID(ctx context.Context, id int64) (*model.CategoryView, error)

	// Get loads the category entity for mutation. Returns nil when absent.
	Get(ctx context.Context, id int64) (*model.Category, error)

	// FindOneByName retrieves the category whose name matches exactly.
	// Returns nil when absent.
	FindOneByName(ctx context.Context, name string) (*model.Category, error)

	// FindOneByNameOrCreate returns the category with the given name,
	// inserting it first if it does not exist yet.
	FindOneByNameOrCreate(ctx context.Context, name string) (*model.Category, error)

	// Create inserts a new category and fills in its generated ID.
	Create(ctx context.Context, category *model.Category) error

	// Update persists the category's current name.
	Update(ctx context.Context, category *model.Category) error

	// Delete removes the category. Referencing products keep existing with
	// a null category.
	Delete(ctx context.Context, category *model.Category) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// ListAll retrieves every product joined to its category, ordered by id.
	// Products without a category are excluded.
	ListAll(ctx context.Context) ([]model.ProductView, error)

	// FindByID retrieves the joined projection of a single product.
	// Returns nil when absent.
	FindByID(ctx context.Context, id int64) (*model.ProductView, error)

	// Get loads the product entity, with its category, for mutation.
	// Returns nil when absent.
	Get(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and fills in its generated ID.
	Create(ctx context.Context, product *model.Product) error

	// Update persists every column of the product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes the product.
	Delete(ctx context.Context, product *model.Product) error
}

// Store hands out repositories and scopes units of work.
type Store interface {
	Categories() CategoryRepository
	Products() ProductRepository

	// WithinTx runs fn against repositories bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(Store) error) error
}
