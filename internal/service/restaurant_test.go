package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/types"
)

func seedRestaurants(t *testing.T, svc *RestaurantService) []model.Restaurant {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seeds := []model.Restaurant{
		{Name: "한강라멘", Address: "서울 용산구 이촌로 3", CreatedAt: base},
		{Name: "마포곱창", Address: "서울 마포구 백범로 21", CreatedAt: base.Add(time.Hour)},
		{Name: "광안리횟집", Address: "부산 수영구 광안해변로 9", CreatedAt: base.Add(2 * time.Hour)},
	}
	created := make([]model.Restaurant, 0, len(seeds))
	for _, r := range seeds {
		row, err := svc.Create(ctx, r)
		require.NoError(t, err)
		created = append(created, *row)
	}
	return created
}

func TestListRestaurantsNoFilter(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	seedRestaurants(t, svc)

	restaurants, err := svc.List(context.Background(), types.RestaurantFilter{})
	require.NoError(t, err)
	require.Len(t, restaurants, 3)

	names := make([]string, len(restaurants))
	for i, r := range restaurants {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"광안리횟집", "마포곱창", "한강라멘"}, names)
}

func TestListAllRestaurantsNewestFirst(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	seedRestaurants(t, svc)

	restaurants, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "광안리횟집", restaurants[0].Name)
	assert.Equal(t, "한강라멘", restaurants[2].Name)
}

func TestListRestaurantsAddressSubstring(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	seedRestaurants(t, svc)

	restaurants, err := svc.List(context.Background(), types.RestaurantFilter{Address: ptr("마포구")})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "마포곱창", restaurants[0].Name)
}

func TestListRestaurantsAddressCaseInsensitive(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, model.Restaurant{Name: "이태원브런치", Address: "서울 용산구 Itaewon-ro 27"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Restaurant{Name: "한남파스타", Address: "서울 용산구 한남대로 12"})
	require.NoError(t, err)

	restaurants, err := svc.List(ctx, types.RestaurantFilter{Address: ptr("ITAEWON")})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "이태원브런치", restaurants[0].Name)
}

func TestListRestaurantsRatingFloor(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	created := seedRestaurants(t, svc)
	ctx := context.Background()

	_, err := svc.UpdatePatch(ctx, created[1].ID, map[string]interface{}{"rating": 4.5})
	require.NoError(t, err)
	_, err = svc.UpdatePatch(ctx, created[2].ID, map[string]interface{}{"rating": 3.0})
	require.NoError(t, err)

	restaurants, err := svc.List(ctx, types.RestaurantFilter{Rating: ptr(4.0)})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "마포곱창", restaurants[0].Name)
}

func TestListRestaurantsBookmarkedOnly(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	created := seedRestaurants(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.UpdateBookmark(ctx, created[0].ID, true))

	restaurants, err := svc.List(ctx, types.RestaurantFilter{OnlyBookmarked: true})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "한강라멘", restaurants[0].Name)
}

func TestCreateRestaurantForcesDefaults(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))

	on := true
	five := 5.0
	restaurant, err := svc.Create(context.Background(), model.Restaurant{
		Name:     "약수순대",
		Address:  "서울 중구 다산로 33",
		Bookmark: &on,
		Rating:   &five,
	})
	require.NoError(t, err)
	require.NotZero(t, restaurant.ID)
	require.NotNil(t, restaurant.Bookmark)
	assert.False(t, *restaurant.Bookmark)
	require.NotNil(t, restaurant.Rating)
	assert.Equal(t, 0.0, *restaurant.Rating)
}

func TestRegionsDedupedAndSorted(t *testing.T) {
	svc := NewRestaurantService(setupTestDB(t))
	ctx := context.Background()

	addresses := []string{
		"서울 마포구 백범로 21",
		"서울 마포구 양화로 5",
		"서울 용산구 이촌로 3",
		"부산 수영구 광안해변로 9",
		"판교",
	}
	for _, addr := range addresses {
		_, err := svc.Create(ctx, model.Restaurant{Name: "r", Address: addr})
		require.NoError(t, err)
	}

	regions, err := svc.Regions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"마포구", "수영구", "용산구", "판교"}, regions)
}
