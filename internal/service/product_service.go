package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	store     repository.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store repository.Store, logger zerolog.Logger) ProductService {
	return &productService{
		store:     store,
		validator: newValidator(),
		logger:    logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves every product with its category name.
func (s *productService) GetAll(ctx context.Context) ([]model.ProductView, error) {
	products, err := s.store.Products().ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.ProductView, error) {
	product, err := s.store.Products().FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Add creates a product, resolving its category by name and creating the
// category if it does not exist yet.
func (s *productService) Add(ctx context.Context, payload *model.ProductPayload) (int64, error) {
	if err := s.Validate(payload); err != nil {
		return 0, err
	}
	if err := requireCreateFields(payload); err != nil {
		s.logger.Warn().Err(err).Msg("incomplete product payload")
		return 0, err
	}

	product := &model.Product{
		Name:  *payload.Name,
		SKU:   *payload.SKU,
		Price: *payload.Price,
	}

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		category, err := tx.Categories().FindOneByNameOrCreate(ctx, *payload.Category)
		if err != nil {
			return err
		}
		product.CategoryID = &category.ID
		product.Category = category

		return tx.Products().Create(ctx, product)
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("sku", product.SKU).
			Str("category_name", *payload.Category).
			Msg("failed to add product")
		return 0, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int64("category_id", *product.CategoryID).
		Msg("product created successfully")

	return product.ID, nil
}

// Update applies a partial update to the product with the given ID.
func (s *productService) Update(ctx context.Context, id int64, payload *model.ProductPayload) (int64, error) {
	if err := s.Validate(payload); err != nil {
		return 0, err
	}

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		product, err := tx.Products().Get(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return model.ErrProductNotFound
		}

		if payload.Category != nil {
			category, err := tx.Categories().FindOneByNameOrCreate(ctx, *payload.Category)
			if err != nil {
				return err
			}
			product.CategoryID = &category.ID
			product.Category = category
		}
		if payload.Name != nil {
			product.Name = *payload.Name
		}
		if payload.Price != nil {
			product.Price = *payload.Price
		}
		if payload.SKU != nil {
			product.SKU = *payload.SKU
		}

		return tx.Products().Update(ctx, product)
	})
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Warn().Int64("product_id", id).Msg("failed to update product, product not found")
			return 0, err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return 0, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated successfully")

	return id, nil
}

// Delete removes the product with the given ID.
func (s *productService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		product, err := tx.Products().Get(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return model.ErrProductNotFound
		}
		return tx.Products().Delete(ctx, product)
	})
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Warn().Int64("product_id", id).Msg("failed to delete product, product not found")
			return err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted successfully")

	return nil
}

// Validate checks that every field present in the payload is non-blank.
// All fields are optional; an empty payload is valid.
func (s *productService) Validate(payload *model.ProductPayload) error {
	if payload == nil {
		return model.NewValidationError("payload is required")
	}
	if err := validateStruct(s.validator, payload); err != nil {
		s.logger.Debug().Err(err).Msg("product payload rejected")
		return err
	}
	return nil
}

// requireCreateFields reports the fields a new product cannot do without.
func requireCreateFields(payload *model.ProductPayload) error {
	var missing []string
	if payload.Name == nil {
		missing = append(missing, "name")
	}
	if payload.Category == nil {
		missing = append(missing, "category")
	}
	if payload.SKU == nil {
		missing = append(missing, "sku")
	}
	if payload.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return model.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}
