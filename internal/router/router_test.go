package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-catalog/internal/handler"
	"product-catalog/internal/middleware"
	"product-catalog/internal/model"
	"product-catalog/internal/observability"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) GetAll(ctx context.Context) ([]model.ProductView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductView), args.Error(1)
}

func (m *mockProductService) GetByID(ctx context.Context, id int64) (*model.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductView), args.Error(1)
}

func (m *mockProductService) Add(ctx context.Context, payload *model.ProductPayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductService) Update(ctx context.Context, id int64, payload *model.ProductPayload) (int64, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductService) Validate(payload *model.ProductPayload) error {
	return m.Called(payload).Error(0)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetAll(ctx context.Context) ([]model.CategoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryView), args.Error(1)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id int64) (*model.CategoryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryView), args.Error(1)
}

func (m *mockCategoryService) Add(ctx context.Context, payload *model.CategoryPayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, id int64, payload *model.CategoryPayload) (int64, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) Validate(payload *model.CategoryPayload) error {
	return m.Called(payload).Error(0)
}

type testRouter struct {
	handler    http.Handler
	products   *mockProductService
	categories *mockCategoryService
}

func newTestRouter(opts Options) *testRouter {
	logger := zerolog.Nop()
	products := new(mockProductService)
	categories := new(mockCategoryService)
	health := handler.NewHealthHandler(func(ctx context.Context) error { return nil }, logger)

	return &testRouter{
		handler: New(
			handler.NewProductHandler(products, logger),
			handler.NewCategoryHandler(categories, logger),
			health,
			opts,
			logger,
		),
		products:   products,
		categories: categories,
	}
}

func (tr *testRouter) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	tr.handler.ServeHTTP(w, req)
	return w
}

func TestRouter_Dispatch(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setup          func(tr *testRouter)
		expectedStatus int
	}{
		{
			name:   "GET /api/products",
			method: http.MethodGet,
			path:   "/api/products",
			setup: func(tr *testRouter) {
				tr.products.On("GetAll", mock.Anything).Return([]model.ProductView{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "GET /api/product/{id}",
			method: http.MethodGet,
			path:   "/api/product/7",
			setup: func(tr *testRouter) {
				tr.products.On("GetByID", mock.Anything, int64(7)).Return(&model.ProductView{
					ID: 7, Category: "Milk", Name: "Skim milk", SKU: "A0001", Price: decimal.RequireFromString("69.99"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "POST /api/product",
			method: http.MethodPost,
			path:   "/api/product",
			body:   `{"name":"Skim milk","category":"Milk","sku":"A0001","price":69.99}`,
			setup: func(tr *testRouter) {
				tr.products.On("Add", mock.Anything, mock.Anything).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "PUT /api/product/{id}",
			method: http.MethodPut,
			path:   "/api/product/7",
			body:   `{"name":"item UPDATED"}`,
			setup: func(tr *testRouter) {
				tr.products.On("Update", mock.Anything, int64(7), mock.Anything).Return(int64(7), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "DELETE /api/product/{id}",
			method: http.MethodDelete,
			path:   "/api/product/7",
			setup: func(tr *testRouter) {
				tr.products.On("Delete", mock.Anything, int64(7)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "GET /api/categories",
			method: http.MethodGet,
			path:   "/api/categories",
			setup: func(tr *testRouter) {
				tr.categories.On("GetAll", mock.Anything).Return([]model.CategoryView{{ID: 1, Name: "Milk"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "GET /api/category/{id}",
			method: http.MethodGet,
			path:   "/api/category/1",
			setup: func(tr *testRouter) {
				tr.categories.On("GetByID", mock.Anything, int64(1)).Return(&model.CategoryView{ID: 1, Name: "Milk"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "POST /api/category",
			method: http.MethodPost,
			path:   "/api/category",
			body:   `{"name":"Test Category"}`,
			setup: func(tr *testRouter) {
				tr.categories.On("Add", mock.Anything, mock.Anything).Return(int64(4), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "PUT /api/category/{id}",
			method: http.MethodPut,
			path:   "/api/category/4",
			body:   `{"name":"Update Name"}`,
			setup: func(tr *testRouter) {
				tr.categories.On("Update", mock.Anything, int64(4), mock.Anything).Return(int64(4), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "DELETE /api/category/{id}",
			method: http.MethodDelete,
			path:   "/api/category/4",
			setup: func(tr *testRouter) {
				tr.categories.On("Delete", mock.Anything, int64(4)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "GET /health",
			method:         http.MethodGet,
			path:           "/health",
			setup:          func(tr *testRouter) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(Options{})
			tt.setup(tr)

			w := tr.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			tr.products.AssertExpectations(t)
			tr.categories.AssertExpectations(t)
		})
	}
}

func TestRouter_UnknownRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Unknown path",
			method:         http.MethodGet,
			path:           "/api/orders",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
		{
			name:           "Unsupported method",
			method:         http.MethodPatch,
			path:           "/api/product/1",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
		{
			name:           "Metrics disabled",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(Options{})

			w := tr.do(tt.method, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Error)
			assert.Equal(t, w.Header().Get(middleware.CorrelationIDHeader), body.CorrelationID)
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	tr := newTestRouter(Options{Metrics: observability.NewMetrics()})
	tr.categories.On("GetByID", mock.Anything, int64(1)).Return(&model.CategoryView{ID: 1, Name: "Milk"}, nil)

	require.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/api/category/1", "").Code)

	w := tr.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `catalog_http_requests_total{code="200",method="GET",route="/api/category/{id}"} 1`)
}

func TestRouter_RateLimitAppliesToAPIOnly(t *testing.T) {
	tr := newTestRouter(Options{RateLimitRequests: 1, RateLimitWindow: time.Minute})
	tr.categories.On("GetAll", mock.Anything).Return([]model.CategoryView{}, nil)

	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/api/categories", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, tr.do(http.MethodGet, "/api/categories", "").Code)
	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/health", "").Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	tr := newTestRouter(Options{CORSAllowedOrigin: "https://shop.example.com"})

	w := tr.do(http.MethodOptions, "/api/products", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
