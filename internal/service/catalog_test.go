package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
)

func newCatalogEnv(t *testing.T) (*CategoryService, *ProductService, *repo.Repo) {
	t.Helper()

	r := repo.New(newTestDB(t))
	return &CategoryService{Repo: r}, &ProductService{Repo: r}, r
}

func TestCategory_CreateAndFetchBySlug(t *testing.T) {
	t.Parallel()

	categories, _, _ := newCatalogEnv(t)
	ctx := context.Background()

	created, err := categories.Create(ctx, "Wall Art & Mirrors", "frames, prints, mirrors")
	require.NoError(t, err)
	assert.Equal(t, "wall-art-mirrors", created.Slug)

	fetched, err := categories.GetBySlug(ctx, "wall-art-mirrors")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "frames, prints, mirrors", fetched.Description)
}

func TestCategory_DuplicateSlug(t *testing.T) {
	t.Parallel()

	categories, _, _ := newCatalogEnv(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, "Lighting", "")
	require.NoError(t, err)

	_, err = categories.Create(ctx, "Lighting", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCategory_UpdateRenamesSlug(t *testing.T) {
	t.Parallel()

	categories, _, _ := newCatalogEnv(t)
	ctx := context.Background()

	created, err := categories.Create(ctx, "Rugs", "")
	require.NoError(t, err)

	name := "Rugs & Carpets"
	updated, err := categories.Update(ctx, created.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "rugs-carpets", updated.Slug)

	_, err = categories.GetBySlug(ctx, "rugs")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProduct_CreateRequiresCategory(t *testing.T) {
	t.Parallel()

	_, products, _ := newCatalogEnv(t)

	_, err := products.Create(context.Background(), ProductInput{
		Name:       "Floating Shelf",
		Quantity:   4,
		Price:      35,
		CategoryID: uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProduct_CreateAndFetch(t *testing.T) {
	t.Parallel()

	categories, products, _ := newCatalogEnv(t)
	ctx := context.Background()

	category, err := categories.Create(ctx, "Bedroom", "")
	require.NoError(t, err)

	created, err := products.Create(ctx, ProductInput{
		Name:        "Linen Duvet Cover",
		Description: "stone washed",
		Quantity:    10,
		Price:       89.99,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "linen-duvet-cover", created.Slug)

	bySlug, err := products.GetBySlug(ctx, "linen-duvet-cover")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
	require.NotNil(t, bySlug.Category)
	assert.Equal(t, category.ID, bySlug.Category.ID)
}

func TestProduct_CreateValidation(t *testing.T) {
	t.Parallel()

	categories, products, _ := newCatalogEnv(t)
	ctx := context.Background()

	category, err := categories.Create(ctx, "Kitchen", "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input ProductInput
	}{
		{"empty name", ProductInput{CategoryID: category.ID, Quantity: 1, Price: 1}},
		{"negative quantity", ProductInput{Name: "Bowl", CategoryID: category.ID, Quantity: -1, Price: 1}},
		{"negative price", ProductInput{Name: "Bowl", CategoryID: category.ID, Quantity: 1, Price: -1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := products.Create(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
		})
	}
}

func TestProduct_ListFilters(t *testing.T) {
	t.Parallel()

	categories, products, r := newCatalogEnv(t)
	ctx := context.Background()

	living, err := categories.Create(ctx, "Living Room", "")
	require.NoError(t, err)
	office, err := categories.Create(ctx, "Office", "")
	require.NoError(t, err)

	seedProduct(t, r, living, "Velvet Armchair", "velvet-armchair", 3, 450)
	seedProduct(t, r, living, "Coffee Table", "coffee-table", 5, 120)
	seedProduct(t, r, office, "Standing Desk", "standing-desk", 2, 600)

	t.Run("by category", func(t *testing.T) {
		got, meta, err := products.List(ctx, repo.ProductFilter{CategorySlug: "office"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "standing-desk", got[0].Slug)
		assert.EqualValues(t, 1, meta.Total)
	})

	t.Run("by keyword", func(t *testing.T) {
		got, _, err := products.List(ctx, repo.ProductFilter{Keyword: "TABLE"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "coffee-table", got[0].Slug)
	})

	t.Run("by price range", func(t *testing.T) {
		floor, ceil := 400.0, 500.0
		got, _, err := products.List(ctx, repo.ProductFilter{MinPrice: &floor, MaxPrice: &ceil}, 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "velvet-armchair", got[0].Slug)
	})
}

func TestCategory_Products(t *testing.T) {
	t.Parallel()

	categories, _, r := newCatalogEnv(t)
	ctx := context.Background()

	outdoor, err := categories.Create(ctx, "Outdoor", "")
	require.NoError(t, err)
	seedProduct(t, r, outdoor, "Patio Set", "patio-set", 1, 999)

	got, err := categories.Products(ctx, "outdoor")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "patio-set", got[0].Slug)

	_, err = categories.Products(ctx, "indoor")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProduct_SearchUnavailableWithoutIndexer(t *testing.T) {
	t.Parallel()

	_, products, _ := newCatalogEnv(t)

	_, _, err := products.Search(context.Background(), "armchair", 1, 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}
