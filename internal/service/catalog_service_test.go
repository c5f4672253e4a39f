package service

import (
	"context"
	"testing"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*stubItemRepo, *stubCategoryRepo, CatalogService) {
	t.Helper()
	items := newStubItemRepo()
	cats := newStubCategoryRepo()
	for _, name := range model.CategoryNames {
		require.NoError(t, cats.Create(context.Background(), &model.Category{Name: name}))
	}
	return items, cats, NewCatalogService(items, cats)
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCatalogFixture(t)

	resp, err := svc.CreateItem(ctx, dto.CreateItemRequest{
		Name:        "bandage",
		Description: "Бинт марлевый стерильный",
		Category:    "Перевязочные материалы",
		Unit:        "шт",
		Quantity:    100,
		MinQuantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "bandage", resp.Name)
	assert.Equal(t, 100, resp.Quantity)
	assert.False(t, resp.LowStock)

	t.Run("duplicate name in same category", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, dto.CreateItemRequest{
			Name: "bandage", Category: "Перевязочные материалы", Unit: "шт",
		})
		require.Error(t, err)
		assert.True(t, apierror.IsKind(err, apierror.Duplicate))
	})

	t.Run("same name in another category is fine", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, dto.CreateItemRequest{
			Name: "bandage", Category: "Расходные материалы", Unit: "шт",
		})
		require.NoError(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, dto.CreateItemRequest{
			Name: "widget", Category: "Канцелярия", Unit: "шт",
		})
		require.Error(t, err)
		assert.True(t, apierror.IsKind(err, apierror.InvalidArgument))
	})
}

func TestUpdateItemMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	items, _, svc := newCatalogFixture(t)

	item := &model.Item{
		Name: "gloves", Description: "Перчатки", Category: "Расходные материалы",
		Unit: "пара", Quantity: 40, MinQuantity: 10,
	}
	require.NoError(t, items.Create(ctx, item))

	newDesc := "Перчатки медицинские стерильные"
	newMin := 15
	resp, err := svc.UpdateItem(ctx, item.ID, dto.UpdateItemRequest{
		Description: &newDesc,
		MinQuantity: &newMin,
	})
	require.NoError(t, err)
	assert.Equal(t, "gloves", resp.Name) // untouched
	assert.Equal(t, newDesc, resp.Description)
	assert.Equal(t, 15, resp.MinQuantity)
	assert.Equal(t, 40, resp.Quantity) // untouched

	t.Run("unknown category rejected", func(t *testing.T) {
		bad := "Канцелярия"
		_, err := svc.UpdateItem(ctx, item.ID, dto.UpdateItemRequest{Category: &bad})
		require.Error(t, err)
		assert.True(t, apierror.IsKind(err, apierror.InvalidArgument))
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, uuid.New(), dto.UpdateItemRequest{})
		require.Error(t, err)
		assert.True(t, apierror.IsKind(err, apierror.NotFound))
	})
}

func TestListLowStock(t *testing.T) {
	ctx := context.Background()
	items, _, svc := newCatalogFixture(t)

	require.NoError(t, items.Create(ctx, &model.Item{
		Name: "bandage", Category: "Перевязочные материалы", Unit: "шт", Quantity: 100, MinQuantity: 20,
	}))
	require.NoError(t, items.Create(ctx, &model.Item{
		Name: "adrenaline", Category: "Медикаменты", Unit: "ампула", Quantity: 20, MinQuantity: 20,
	}))
	require.NoError(t, items.Create(ctx, &model.Item{
		Name: "gloves", Category: "Расходные материалы", Unit: "пара", Quantity: 3, MinQuantity: 10,
	}))

	low, err := svc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2) // at-threshold counts as low
	names := []string{low[0].Name, low[1].Name}
	assert.Contains(t, names, "adrenaline")
	assert.Contains(t, names, "gloves")
	for _, item := range low {
		assert.True(t, item.LowStock)
	}
}

func TestListItemsFilterByCategory(t *testing.T) {
	ctx := context.Background()
	items, _, svc := newCatalogFixture(t)

	require.NoError(t, items.Create(ctx, &model.Item{Name: "bandage", Category: "Перевязочные материалы", Unit: "шт"}))
	require.NoError(t, items.Create(ctx, &model.Item{Name: "gloves", Category: "Расходные материалы", Unit: "пара"}))

	all, err := svc.ListItems(ctx, dto.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListItems(ctx, dto.ItemFilter{Category: "Расходные материалы"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "gloves", filtered[0].Name)
}
