package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/types"
)

func seedMenus(t *testing.T, svc *MenuService) []model.Menu {
	t.Helper()
	ctx := context.Background()
	seeds := []model.Menu{
		{Name: "라멘", CuisineStyle: ptr("일식"), MealType: ptr("점심"), Price: ptr(11000)},
		{Name: "김치찌개", CuisineStyle: ptr("한식"), MainIngredient: ptr("돼지"), MealType: ptr("점심"), Price: ptr(9000)},
		{Name: "티라미수", CuisineStyle: ptr("디저트"), MealType: ptr("간식")},
		{Name: "삼겹살", CuisineStyle: ptr("고기"), MainIngredient: ptr("돼지"), MealType: ptr("저녁"), Price: ptr(17000)},
	}
	created := make([]model.Menu, 0, len(seeds))
	for _, m := range seeds {
		row, err := svc.Create(ctx, m)
		require.NoError(t, err)
		created = append(created, *row)
	}
	return created
}

func TestListMenusNoFilter(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	seedMenus(t, svc)

	menus, err := svc.List(context.Background(), types.MenuFilter{}, false)
	require.NoError(t, err)
	require.Len(t, menus, 4)

	// name ascending
	names := make([]string, len(menus))
	for i, m := range menus {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"김치찌개", "라멘", "삼겹살", "티라미수"}, names)
}

func TestListMenusPriceMinExcludesNullPrice(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	seedMenus(t, svc)

	menus, err := svc.List(context.Background(), types.MenuFilter{PriceMin: ptr(10000)}, false)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	for _, m := range menus {
		require.NotNil(t, m.Price)
		assert.GreaterOrEqual(t, *m.Price, 10000)
	}
}

func TestListMenusPriceRange(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	seedMenus(t, svc)

	menus, err := svc.List(context.Background(), types.MenuFilter{PriceMin: ptr(9000), PriceMax: ptr(11000)}, false)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "김치찌개", menus[0].Name)
	assert.Equal(t, "라멘", menus[1].Name)
}

func TestListMenusCategoricalAndBookmark(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	created := seedMenus(t, svc)
	ctx := context.Background()

	menus, err := svc.List(ctx, types.MenuFilter{MainIngredient: ptr("돼지")}, false)
	require.NoError(t, err)
	require.Len(t, menus, 2)

	require.NoError(t, svc.UpdateBookmark(ctx, created[1].ID, true))
	menus, err = svc.List(ctx, types.MenuFilter{MainIngredient: ptr("돼지")}, true)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "김치찌개", menus[0].Name)
}

func TestGetMenusByIDsEmptyShortCircuits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMenuService(db)
	counter := installCounter(t, db)

	menus, err := svc.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, menus)
	assert.Equal(t, 0, counter.selects)
}

func TestGetMenusByIDs(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	created := seedMenus(t, svc)

	menus, err := svc.GetByIDs(context.Background(), []int64{created[0].ID, created[2].ID})
	require.NoError(t, err)
	assert.Len(t, menus, 2)
}

func TestCreateMenuForcesBookmarkFalse(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	ctx := context.Background()

	on := true
	menu, err := svc.Create(ctx, model.Menu{Name: "돈까스", CuisineStyle: ptr("일식"), Price: ptr(12000), Bookmark: &on})
	require.NoError(t, err)
	require.NotZero(t, menu.ID)
	require.NotZero(t, menu.CreatedAt)
	require.NotNil(t, menu.Bookmark)
	assert.False(t, *menu.Bookmark)

	// round trip through a filter matching only this row
	menus, err := svc.List(ctx, types.MenuFilter{CuisineStyle: ptr("일식"), PriceMin: ptr(12000)}, false)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, menu.ID, menus[0].ID)
	assert.Equal(t, "돈까스", menus[0].Name)
	assert.False(t, menus[0].Bookmarked())
}

func TestUpdateMenuPatchTouchesOnlySuppliedKeys(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	created := seedMenus(t, svc)
	ctx := context.Background()

	updated, err := svc.UpdatePatch(ctx, created[0].ID, map[string]interface{}{"price": 12000})
	require.NoError(t, err)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 12000, *updated.Price)
	assert.Equal(t, created[0].Name, updated.Name)
	require.NotNil(t, updated.CuisineStyle)
	assert.Equal(t, "일식", *updated.CuisineStyle)
}

func TestUpdateMenuBookmarkRoundTrip(t *testing.T) {
	svc := NewMenuService(setupTestDB(t))
	created := seedMenus(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.UpdateBookmark(ctx, created[2].ID, true))
	menu, err := svc.Get(ctx, created[2].ID)
	require.NoError(t, err)
	assert.True(t, menu.Bookmarked())

	require.NoError(t, svc.UpdateBookmark(ctx, created[2].ID, false))
	menu, err = svc.Get(ctx, created[2].ID)
	require.NoError(t, err)
	assert.False(t, menu.Bookmarked())
}
