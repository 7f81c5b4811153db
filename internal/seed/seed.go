// Package seed loads the sample catalogue used for local development and
// demos.
package seed

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Product is a sample product keyed by SKU.
type Product struct {
	Name     string
	Category string
	SKU      string
	Price    decimal.Decimal
}

// Catalog is a set of sample categories and products.
type Catalog struct {
	Categories []string
	Products   []Product
}

// Result counts what a Run created.
type Result struct {
	CategoriesCreated int
	ProductsCreated   int
}

// Sample returns the default sample catalogue.
func Sample() Catalog {
	return Catalog{
		Categories: []string{"Milk", "Cheese", "Bread"},
		Products: []Product{
			{Name: "Skim milk", Category: "Milk", SKU: "A0001", Price: decimal.RequireFromString("69.99")},
			{Name: "Blue cheese", Category: "Cheese", SKU: "A0002", Price: decimal.RequireFromString("269.99")},
		},
	}
}

// Run loads catalog through the services. Categories that already exist and
// products whose SKU is already listed are skipped, so Run can be repeated.
func Run(
	ctx context.Context,
	catalog Catalog,
	categories service.CategoryService,
	products service.ProductService,
	logger zerolog.Logger,
) (Result, error) {
	var result Result

	for _, name := range catalog.Categories {
		id, err := categories.Add(ctx, &model.CategoryPayload{Name: name})
		if errors.Is(err, model.ErrCategoryExists) {
			logger.Debug().Str("category_name", name).Msg("category already present")
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		result.CategoriesCreated++
		logger.Info().Int64("category_id", id).Str("category_name", name).Msg("seeded category")
	}

	existing, err := products.GetAll(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list products: %w", err)
	}
	skus := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		skus[p.SKU] = struct{}{}
	}

	for _, p := range catalog.Products {
		if _, ok := skus[p.SKU]; ok {
			logger.Debug().Str("sku", p.SKU).Msg("product already present")
			continue
		}

		name, category, sku, price := p.Name, p.Category, p.SKU, p.Price
		id, err := products.Add(ctx, &model.ProductPayload{
			Name:     &name,
			Category: &category,
			SKU:      &sku,
			Price:    &price,
		})
		if err != nil {
			return result, fmt.Errorf("failed to seed product %q: %w", p.SKU, err)
		}
		skus[p.SKU] = struct{}{}
		result.ProductsCreated++
		logger.Info().Int64("product_id", id).Str("sku", p.SKU).Msg("seeded product")
	}

	return result, nil
}
