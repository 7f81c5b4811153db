package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"product-catalog/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context) ([]model.ProductView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductView), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int64) (*model.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductView), args.Error(1)
}

func (m *MockProductService) Add(ctx context.Context, payload *model.ProductPayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id int64, payload *model.ProductPayload) (int64, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) Validate(payload *model.ProductPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetAll(ctx context.Context) ([]model.CategoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryView), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*model.CategoryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryView), args.Error(1)
}

func (m *MockCategoryService) Add(ctx context.Context, payload *model.CategoryPayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, payload *model.CategoryPayload) (int64, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryService) Validate(payload *model.CategoryPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

// newRequest builds a request carrying the chi {id} URL parameter, as the
// router would for /api/product/{id} and /api/category/{id}.
func newRequest(method, target, body, id string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if id != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}
	return req
}
