package read

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/memory"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Get(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(ServiceMock)

	router := chi.NewRouter()
	router.Get("/products/{id}", New(newNoopLogger(), serviceMock).ServeHTTP)

	product := &models.Product{ID: 2, Name: "T-Shirt", Category: "Apparel", Price: 19.99, InStock: true}

	tests := []struct {
		name           string
		target         string
		mockID         int
		mockProduct    *models.Product
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "existing product",
			target:         "/products/2",
			mockID:         2,
			mockProduct:    product,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown id",
			target:         "/products/99",
			mockID:         99,
			mockErr:        memory.ErrProductNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "Product not found",
		},
		{
			name:           "non-numeric id",
			target:         "/products/abc",
			wantStatusCode: http.StatusNotFound,
			wantError:      "Product not found",
		},
		{
			name:           "unexpected error",
			target:         "/products/2",
			mockID:         2,
			mockErr:        errors.New("boom"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if tt.mockCalled {
				serviceMock.On("Get", mock.Anything, tt.mockID).
					Return(tt.mockProduct, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantError != "" {
				var got map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				var got models.Product
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, *product, got)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
