package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Ошибки хранилища товаров.
var (
	ErrProductIDExists   = errors.New("product id already exists")
	ErrProductNameExists = errors.New("product name already exists")
	ErrProductNotFound   = errors.New("product not found")
)

// ProductStore хранит товары в порядке добавления.
type ProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

// NewProductStore создает хранилище товаров с начальными записями.
func NewProductStore(seed ...models.Product) *ProductStore {
	return &ProductStore{
		products: append([]models.Product{}, seed...),
	}
}

// SeedProducts возвращает стартовый набор товаров каталога.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: 999.99, InStock: true},
		{ID: 2, Name: "T-Shirt", Category: "Apparel", Price: 19.99, InStock: true},
		{ID: 3, Name: "Coffee Mug", Category: "Home", Price: 9.99, InStock: false},
	}
}

// List возвращает товары в порядке добавления.
//
// Непустой category ограничивает выборку товарами этой категории
// (сравнение без учета регистра).
func (s *ProductStore) List(ctx context.Context, category string) ([]models.Product, error) {
	const op = "storage.memory.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || strings.EqualFold(p.Category, category) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Get возвращает товар по его ID.
func (s *ProductStore) Get(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.memory.Get"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
}

// Create добавляет товар в хранилище.
//
// ID должен быть уникален, имя — уникально без учета регистра.
// Запись сохраняется дословно, без нормализации полей.
func (s *ProductStore) Create(ctx context.Context, product models.Product) error {
	const op = "storage.memory.Create"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == product.ID {
			return fmt.Errorf("%s: %w", op, ErrProductIDExists)
		}
	}
	for _, p := range s.products {
		if strings.EqualFold(p.Name, product.Name) {
			return fmt.Errorf("%s: %w", op, ErrProductNameExists)
		}
	}
	s.products = append(s.products, product)
	return nil
}

// HasCategory сообщает, встречалась ли категория среди товаров
// (сравнение без учета регистра).
func (s *ProductStore) HasCategory(ctx context.Context, category string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			return true
		}
	}
	return false
}
