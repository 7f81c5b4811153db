package service

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	store     repository.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store repository.Store, logger zerolog.Logger) CategoryService {
	return &categoryService{
		store:     store,
		validator: newValidator(),
		logger:    logger.With().Str("service", "category").Logger(),
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]model.CategoryView, error) {
	categories, err := s.store.Categories().ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.CategoryView, error) {
	category, err := s.store.Categories().FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category by ID")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

func (s *categoryService) Add(ctx context.Context, payload *model.CategoryPayload) (int64, error) {
	if err := s.Validate(payload); err != nil {
		return 0, err
	}

	category := &model.Category{Name: payload.Name}
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Categories().Create(ctx, category)
	})
	if err != nil {
		if errors.Is(err, model.ErrCategoryExists) {
			s.logger.Warn().Str("category_name", payload.Name).Msg("failed to add category, name taken")
			return 0, err
		}
		s.logger.Error().Err(err).Str("category_name", payload.Name).Msg("failed to add category")
		return 0, fmt.Errorf("failed to add category: %w", err)
	}

	s.logger.Info().Int64("category_id", category.ID).Msg("category created successfully")

	return category.ID, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, payload *model.CategoryPayload) (int64, error) {
	if err := s.Validate(payload); err != nil {
		return 0, err
	}

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		category, err := tx.Categories().Get(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return model.ErrCategoryNotFound
		}

		category.Name = payload.Name
		return tx.Categories().Update(ctx, category)
	})
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) || errors.Is(err, model.ErrCategoryExists) {
			s.logger.Warn().Err(err).Int64("category_id", id).Msg("failed to update category")
			return 0, err
		}
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return 0, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Msg("category updated successfully")

	return id, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		category, err := tx.Categories().Get(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return model.ErrCategoryNotFound
		}
		return tx.Categories().Delete(ctx, category)
	})
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			s.logger.Warn().Int64("category_id", id).Msg("failed to delete category, category not found")
			return err
		}
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted successfully")

	return nil
}

// Validate checks that the category name is present and non-blank.
func (s *categoryService) Validate(payload *model.CategoryPayload) error {
	if payload == nil {
		return model.NewValidationError("payload is required")
	}
	return validateStruct(s.validator, payload)
}
