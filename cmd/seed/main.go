package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/matjipduo/backend/config"
	"github.com/matjipduo/backend/internal/database"
	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/service"
)

func ptr[T any](v T) *T { return &v }

// Seeds a handful of places and dishes so a fresh database has
// something to recommend.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()
	menus := service.NewMenuService(db)
	restaurants := service.NewRestaurantService(db)
	relations := service.NewRelationService(db, menus, restaurants)

	seedRestaurants := []model.Restaurant{
		{Name: "을지로골뱅이", Address: "서울 중구 을지로 100", OpenTime: ptr("17:00"), CloseTime: ptr("23:00")},
		{Name: "망원동닭갈비", Address: "서울 마포구 망원로 12", OpenTime: ptr("11:00"), CloseTime: ptr("21:30")},
		{Name: "수원통닭거리", Address: "수원 팔달구 정조로 800"},
	}
	seedMenus := []model.Menu{
		{Name: "닭갈비", CuisineStyle: ptr("한식"), MainIngredient: ptr("닭"), MealType: ptr("저녁"), Price: ptr(13000)},
		{Name: "골뱅이무침", CuisineStyle: ptr("한식"), MainIngredient: ptr("해산물"), MealType: ptr("야식"), Price: ptr(18000)},
		{Name: "마라탕", CuisineStyle: ptr("중식"), MainIngredient: ptr("기타"), MealType: ptr("점심"), Price: ptr(11000)},
	}

	createdRestaurants := make([]*model.Restaurant, 0, len(seedRestaurants))
	for _, r := range seedRestaurants {
		created, err := restaurants.Create(ctx, r)
		if err != nil {
			logger.Fatal("failed to seed restaurant", zap.String("name", r.Name), zap.Error(err))
		}
		createdRestaurants = append(createdRestaurants, created)
	}

	createdMenus := make([]*model.Menu, 0, len(seedMenus))
	for _, m := range seedMenus {
		created, err := menus.Create(ctx, m)
		if err != nil {
			logger.Fatal("failed to seed menu", zap.String("name", m.Name), zap.Error(err))
		}
		createdMenus = append(createdMenus, created)
	}

	rows := []model.Relation{
		{RestaurantID: createdRestaurants[0].ID, MenuID: createdMenus[1].ID, Price: ptr(20000), Note: ptr("소면 추가 가능")},
		{RestaurantID: createdRestaurants[1].ID, MenuID: createdMenus[0].ID, Price: ptr(14000), IsInfinit: ptr(true)},
	}
	if err := relations.CreateMany(ctx, rows); err != nil {
		logger.Fatal("failed to seed relations", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.Int("restaurants", len(createdRestaurants)),
		zap.Int("menus", len(createdMenus)),
		zap.Int("relations", len(rows)),
	)
}
