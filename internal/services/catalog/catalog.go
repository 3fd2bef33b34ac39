// Package catalog содержит бизнес-логику работы с каталогом товаров.
package catalog

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// ProductRepository описывает контракт для работы с товарами в хранилище.
type ProductRepository interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, product models.Product) error
	HasCategory(ctx context.Context, category string) bool
}

// Service предоставляет операции каталога поверх хранилища товаров.
type Service struct {
	products ProductRepository
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(products ProductRepository, log *slog.Logger) *Service {
	return &Service{
		products: products,
		log:      log,
	}
}

// List возвращает товары, при непустом category — только из этой категории.
func (s *Service) List(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.List(ctx, category)
}

// Get возвращает товар по ID.
func (s *Service) Get(ctx context.Context, id int) (*models.Product, error) {
	return s.products.Get(ctx, id)
}

// Create добавляет товар и возвращает сохраненную запись.
//
// Впервые встреченная категория фиксируется в логе; это побочный эффект,
// а не ошибка.
func (s *Service) Create(ctx context.Context, product models.Product) (models.Product, error) {
	newCategory := !s.products.HasCategory(ctx, product.Category)
	if err := s.products.Create(ctx, product); err != nil {
		return models.Product{}, err
	}
	if newCategory {
		s.log.Info("new category detected", slog.String("category", product.Category))
	}
	return product, nil
}
