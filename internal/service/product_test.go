package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/repository"
)

func newProductService() ProductService {
	return NewProductService(repository.NewMemoryProductRepository(), hclog.NewNullLogger())
}

func TestAddProductDefaultsStatus(t *testing.T) {
	ps := newProductService()
	ctx := context.Background()

	p := &domain.Product{Name: "Runner X", Brand: "Acme", Price: 129.90, Sizes: "40,41,42"}
	require.NoError(t, ps.AddProduct(ctx, p))

	got, err := ps.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestAddProductKeepsExplicitStatus(t *testing.T) {
	ps := newProductService()
	ctx := context.Background()

	p := &domain.Product{Name: "Runner X", Brand: "Acme", Price: 129.90, Sizes: "40,41,42", Status: "draft"}
	require.NoError(t, ps.AddProduct(ctx, p))

	got, err := ps.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Status)
}

func TestUpdateProductIsFullOverwrite(t *testing.T) {
	ps := newProductService()
	ctx := context.Background()

	p := &domain.Product{
		Name:        "Runner X",
		Brand:       "Acme",
		Category:    "Running",
		Price:       129.90,
		Sizes:       "40,41,42",
		Description: "Lightweight road shoe",
	}
	require.NoError(t, ps.AddProduct(ctx, p))

	update := &domain.Product{
		ID:     p.ID,
		Name:   "Runner X",
		Brand:  "Acme",
		Price:  99.90,
		Sizes:  "40,41,42",
		Status: domain.StatusActive,
	}
	require.NoError(t, ps.UpdateProduct(ctx, update))

	got, err := ps.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.90, got.Price)
	// omitted optional fields are cleared, not merged
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Description)
}

func TestUpdateProductDefaultsStatus(t *testing.T) {
	ps := newProductService()
	ctx := context.Background()

	p := &domain.Product{Name: "Runner X", Brand: "Acme", Price: 129.90, Sizes: "40,41,42"}
	require.NoError(t, ps.AddProduct(ctx, p))

	// status omitted from the replacement record gets the default, the
	// same as on create
	update := &domain.Product{ID: p.ID, Name: "Runner X", Brand: "Acme", Price: 99.90, Sizes: "40,41,42"}
	require.NoError(t, ps.UpdateProduct(ctx, update))

	got, err := ps.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestUpdateUnknownProduct(t *testing.T) {
	ps := newProductService()

	err := ps.UpdateProduct(context.Background(), &domain.Product{ID: 42, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	ps := newProductService()
	ctx := context.Background()

	p := &domain.Product{Name: "Runner X", Brand: "Acme", Price: 129.90, Sizes: "40,41,42"}
	require.NoError(t, ps.AddProduct(ctx, p))
	require.NoError(t, ps.DeleteProduct(ctx, p.ID))

	_, err := ps.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
