package repository

import (
	"context"
	"sync"

	"github.com/tenisx/catalog-api/internal/domain"
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int) error
}

type memoryProductRepository struct {
	products []*domain.Product
	mutex    sync.RWMutex
}

// NewMemoryProductRepository returns an empty in-memory repository.
// It backs the tests and the database-free dev mode.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{}
}

func (r *memoryProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]*domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			p := *product
			return &p, nil
		}
	}

	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) Add(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product.ID = r.getNextID()
	p := *product
	r.products = append(r.products, &p)
	return nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			np := *product
			r.products[i] = &np
			return nil
		}
	}

	return domain.ErrProductNotFound
}

func (r *memoryProductRepository) Delete(ctx context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, product := range r.products {
		if product.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}

	return domain.ErrProductNotFound
}

func (r *memoryProductRepository) getNextID() int {
	if len(r.products) == 0 {
		return 1
	}
	return r.products[len(r.products)-1].ID + 1
}
