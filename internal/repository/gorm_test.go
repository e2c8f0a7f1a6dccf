package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenisx/catalog-api/internal/domain"
)

func newGormRepository(t *testing.T) ProductRepository {
	t.Helper()

	// shared cache so every pooled connection sees the same in-memory DB
	db, err := OpenDatabase("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewGormProductRepository(db)
}

func TestGormRepositoryRoundTrip(t *testing.T) {
	repo := newGormRepository(t)
	ctx := context.Background()

	p := newProduct("Runner X")
	p.Description = "Lightweight road shoe"
	require.NoError(t, repo.Add(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Price, got.Price)
	assert.Equal(t, p.Description, got.Description)
}

func TestGormRepositoryNotFoundMapping(t *testing.T) {
	repo := newGormRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	p := newProduct("Runner X")
	p.ID = 4242
	assert.ErrorIs(t, repo.Update(ctx, p), domain.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 4242), domain.ErrProductNotFound)
}

func TestGormRepositoryUpdateDoesNotCreateMissingRow(t *testing.T) {
	repo := newGormRepository(t)
	ctx := context.Background()

	// updating an id that has been deleted must stay NotFound, never
	// resurrect the row
	p := newProduct("Runner X")
	require.NoError(t, repo.Add(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	replacement := newProduct("Runner X")
	replacement.ID = p.ID
	assert.ErrorIs(t, repo.Update(ctx, replacement), domain.ErrProductNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 0)
}

func TestGormRepositoryUpdateClearsOmittedFields(t *testing.T) {
	repo := newGormRepository(t)
	ctx := context.Background()

	p := newProduct("Runner X")
	p.Category = "Running"
	p.Description = "Lightweight road shoe"
	require.NoError(t, repo.Add(ctx, p))

	replacement := newProduct("Runner X")
	replacement.ID = p.ID
	replacement.Price = 99.90
	require.NoError(t, repo.Update(ctx, replacement))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.90, got.Price)
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Description)
}
