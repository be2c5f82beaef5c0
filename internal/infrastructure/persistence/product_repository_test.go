package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name string, active bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductInput{
		Name:        name,
		Category:    catalog.CategoryEdibles,
		Strain:      catalog.StrainIndica,
		THC:         "20%",
		Price:       decimal.RequireFromString("149.99"),
		Icon:        "🍪",
		Description: name + " description",
		IsActive:    active,
	})
	require.NoError(t, err)
	return p
}

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("assigns id on create", func(t *testing.T) {
		p := newTestProduct(t, "Choc Chip Cookie", true)
		require.NoError(t, repo.Save(ctx, p))
		assert.NotZero(t, p.ID)

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Choc Chip Cookie", found.Name)
		assert.Equal(t, catalog.CategoryEdibles, found.Category)
		assert.Equal(t, catalog.StrainIndica, found.Strain)
		assert.Equal(t, "20%", found.THC)
		assert.Equal(t, "149.99", found.Price.StringFixed(2))
		assert.Equal(t, "🍪", found.Icon)
		assert.True(t, found.IsActive)
		assert.Nil(t, found.Image)
	})

	t.Run("persists inactive flag", func(t *testing.T) {
		p := newTestProduct(t, "Hidden", false)
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})

	t.Run("round-trips inline image", func(t *testing.T) {
		p := newTestProduct(t, "With Image", true)
		img, err := catalog.NewInlineImage("image/png", []byte{0x89, 'P', 'N', 'G'})
		require.NoError(t, err)
		require.NoError(t, p.SetImage(img))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Image)
		assert.Equal(t, "image/png", found.Image.ContentType)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, found.Image.Data)
		assert.False(t, found.Image.IsStored())
	})

	t.Run("round-trips stored image", func(t *testing.T) {
		p := newTestProduct(t, "Stored Image", true)
		img, err := catalog.NewStoredImage("image/jpeg", "products/1.jpg", "https://cdn.example.com/products/1.jpg")
		require.NoError(t, err)
		require.NoError(t, p.SetImage(img))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Image)
		assert.True(t, found.Image.IsStored())
		assert.Equal(t, "https://cdn.example.com/products/1.jpg", found.Image.DisplayURL())
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 9999)
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p := newTestProduct(t, "Original", true)
	img, err := catalog.NewInlineImage("image/gif", []byte("GIF89a"))
	require.NoError(t, err)
	require.NoError(t, p.SetImage(img))
	require.NoError(t, repo.Save(ctx, p))

	t.Run("updates fields and clears image", func(t *testing.T) {
		require.NoError(t, p.Update(catalog.ProductInput{
			Name:     "Renamed",
			Category: catalog.CategoryAccessories,
			Price:    decimal.NewFromInt(10),
			IsActive: false,
		}))
		p.RemoveImage()
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.Equal(t, catalog.CategoryAccessories, found.Category)
		assert.Equal(t, catalog.StrainHybrid, found.Strain)
		assert.Equal(t, catalog.DefaultIcon, found.Icon)
		assert.False(t, found.IsActive)
		assert.Nil(t, found.Image)
	})

	t.Run("returns not found for missing row", func(t *testing.T) {
		ghost := newTestProduct(t, "Ghost", true)
		ghost.ID = 4242
		assert.Equal(t, shared.ErrNotFound, repo.Save(ctx, ghost))
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"Alpha Kush", "Beta Gummies", "Gamma Pipe"}
	for i, name := range names {
		p := newTestProduct(t, name, i != 1)
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		p.UpdatedAt = p.CreatedAt
		require.NoError(t, repo.Save(ctx, p))
	}

	t.Run("lists newest first", func(t *testing.T) {
		products, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "Gamma Pipe", products[0].Name)
		assert.Equal(t, "Beta Gummies", products[1].Name)
		assert.Equal(t, "Alpha Kush", products[2].Name)
	})

	t.Run("active only", func(t *testing.T) {
		products, err := repo.FindActive(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Gamma Pipe", products[0].Name)
		assert.Equal(t, "Alpha Kush", products[1].Name)
	})

	t.Run("searches case-insensitively", func(t *testing.T) {
		products, err := repo.FindAll(ctx, shared.Filter{Search: "KUSH"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Alpha Kush", products[0].Name)
	})

	t.Run("applies limit", func(t *testing.T) {
		products, err := repo.FindAll(ctx, shared.DefaultFilter().WithLimit(1))
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Gamma Pipe", products[0].Name)
	})

	t.Run("pages", func(t *testing.T) {
		products, err := repo.FindAll(ctx, shared.DefaultFilter().WithPage(2, 2))
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Alpha Kush", products[0].Name)
	})

	t.Run("counts", func(t *testing.T) {
		total, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		active, err := repo.Count(ctx, shared.DefaultFilter().With("is_active", true))
		require.NoError(t, err)
		assert.Equal(t, int64(2), active)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p := newTestProduct(t, "Doomed", true)
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.FindByID(ctx, p.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	assert.Equal(t, shared.ErrNotFound, repo.Delete(ctx, p.ID))
}
