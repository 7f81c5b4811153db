package repository

import (
	"context"
	"errors"
	"testing"

	"product-catalog/internal/database/dbtest"
	"product-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WithinTx(t *testing.T) {
	testDB := dbtest.Setup(t)
	ctx := context.Background()
	store := NewStore(testDB.DB, zerolog.Nop())

	t.Run("Commit on success", func(t *testing.T) {
		testDB.Reset(t)

		var productID int64
		err := store.WithinTx(ctx, func(tx Store) error {
			category, err := tx.Categories().FindOneByNameOrCreate(ctx, "Milk")
			if err != nil {
				return err
			}
			product := &model.Product{
				CategoryID: &category.ID,
				Name:       "Skim milk",
				SKU:        "A0001",
				Price:      decimal.RequireFromString("69.99"),
			}
			if err := tx.Products().Create(ctx, product); err != nil {
				return err
			}
			productID = product.ID
			return nil
		})
		require.NoError(t, err)

		view, err := store.Products().FindByID(ctx, productID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "Milk", view.Category)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		testDB.Reset(t)

		boom := errors.New("boom")
		err := store.WithinTx(ctx, func(tx Store) error {
			if _, err := tx.Categories().FindOneByNameOrCreate(ctx, "Cheese"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		category, err := store.Categories().FindOneByName(ctx, "Cheese")
		require.NoError(t, err)
		assert.Nil(t, category, "category insert must be rolled back")
	})
}
