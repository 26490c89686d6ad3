package router

import (
	"github.com/gin-gonic/gin"

	"github.com/matjipduo/backend/internal/api"
	"github.com/matjipduo/backend/internal/middleware"
)

// Setup configures the application routes. Everything except login is
// behind the session gate.
func Setup(
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	restaurantHandler *api.RestaurantHandler,
	relationHandler *api.RelationHandler,
	validator middleware.SessionValidator,
	corsOrigins []string,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(corsOrigins))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.SessionAuth(validator))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/meta/categories", api.ListCategories)

		menus := protected.Group("/menus")
		{
			menus.GET("", menuHandler.ListMenus)
			menus.GET("/recommend", menuHandler.RecommendMenu)
			menus.POST("", menuHandler.CreateMenu)
			menus.PATCH("/:id", menuHandler.UpdateMenu)
			menus.PUT("/:id/bookmark", menuHandler.UpdateMenuBookmark)
			menus.GET("/:id/restaurants", menuHandler.ListRestaurantsForMenu)
		}

		restaurants := protected.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.ListRestaurants)
			restaurants.GET("/regions", restaurantHandler.ListRegions)
			restaurants.POST("", restaurantHandler.CreateRestaurant)
			restaurants.PATCH("/:id", restaurantHandler.UpdateRestaurant)
			restaurants.PUT("/:id/bookmark", restaurantHandler.UpdateRestaurantBookmark)
			restaurants.GET("/:id/menus", restaurantHandler.ListMenusForRestaurant)
			restaurants.GET("/:id/menu-details", restaurantHandler.ListMenuDetails)
		}

		relations := protected.Group("/relations")
		{
			relations.GET("", relationHandler.ListRelations)
			relations.POST("", relationHandler.CreateRelations)
			relations.DELETE("/:id", relationHandler.DeleteRelation)
		}
	}

	return router
}
