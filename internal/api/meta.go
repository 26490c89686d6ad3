package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matjipduo/backend/internal/model"
)

// ListCategories hands the forms and filters their single source of
// category values and display metadata.
func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cuisine_styles":   model.CuisineStyles,
		"main_ingredients": model.MainIngredients,
		"meal_types":       model.MealTypes,
	})
}
