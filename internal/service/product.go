package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/repository"
)

type ProductService interface {
	GetProducts(ctx context.Context) (domain.Products, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	AddProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type productService struct {
	repo   repository.ProductRepository
	logger hclog.Logger
}

func NewProductService(repo repository.ProductRepository, logger hclog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger,
	}
}

func (s *productService) GetProducts(ctx context.Context) (domain.Products, error) {
	s.logger.Debug("Getting all products")

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error("Unable to get the product by ID", "id", id, "error", err)
		}
		return nil, err
	}

	return product, nil
}

func (s *productService) AddProduct(ctx context.Context, product *domain.Product) error {
	s.logger.Debug("Adding new product", "name", product.Name)

	if product.Status == "" {
		product.Status = domain.StatusActive
	}

	err := s.repo.Add(ctx, product)
	if err != nil {
		s.logger.Error("Unable to add product", "name", product.Name, "error", err)
		return err
	}

	return nil
}

// UpdateProduct overwrites every field of the stored record with the
// given values. Callers must supply the full record; omitted optional
// fields end up cleared. Status gets the same default as on create so
// a record can never be stored without one.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	s.logger.Debug("Updating product", "id", product.ID)

	if product.Status == "" {
		product.Status = domain.StatusActive
	}

	err := s.repo.Update(ctx, product)
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error("Unable to update product", "id", product.ID, "error", err)
		}
		return err
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int) error {
	s.logger.Debug("Deleting product", "id", id)

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error("Unable to delete product", "id", id, "error", err)
		}
		return err
	}

	return nil
}
