package api

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/service"
	"github.com/matjipduo/backend/internal/types"
)

// MenuHandler exposes the menu table plus the random recommendation.
type MenuHandler struct {
	menus     *service.MenuService
	relations *service.RelationService
	logger    *zap.Logger
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(menus *service.MenuService, relations *service.RelationService, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{menus: menus, relations: relations, logger: logger}
}

// menuFilterFromQuery reads the filter query params. An absent or
// empty param imposes no constraint.
func menuFilterFromQuery(c *gin.Context) (types.MenuFilter, bool, error) {
	var filter types.MenuFilter
	if v := c.Query("cuisine_style"); v != "" {
		filter.CuisineStyle = &v
	}
	if v := c.Query("main_ingredient"); v != "" {
		filter.MainIngredient = &v
	}
	if v := c.Query("meal_type"); v != "" {
		filter.MealType = &v
	}
	if v := c.Query("price_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, false, err
		}
		filter.PriceMin = &n
	}
	if v := c.Query("price_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, false, err
		}
		filter.PriceMax = &n
	}
	onlyBookmarked := c.Query("bookmarked") == "true"
	return filter, onlyBookmarked, nil
}

func (h *MenuHandler) ListMenus(c *gin.Context) {
	filter, onlyBookmarked, err := menuFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price bound"})
		return
	}

	menus, err := h.menus.List(c.Request.Context(), filter, onlyBookmarked)
	if err != nil {
		h.logger.Error("list menus failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// RecommendMenu picks one random menu out of the filtered candidates,
// returning both the pick and the full candidate list.
func (h *MenuHandler) RecommendMenu(c *gin.Context) {
	filter, onlyBookmarked, err := menuFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price bound"})
		return
	}

	menus, err := h.menus.List(c.Request.Context(), filter, onlyBookmarked)
	if err != nil {
		h.logger.Error("recommend menus failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menus"})
		return
	}

	var pick *model.Menu
	if len(menus) > 0 {
		pick = &menus[rand.Intn(len(menus))]
	}
	c.JSON(http.StatusOK, gin.H{"menu": pick, "candidates": menus})
}

func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req types.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := h.menus.Create(c.Request.Context(), model.Menu{
		Name:           req.Name,
		CuisineStyle:   req.CuisineStyle,
		MainIngredient: req.MainIngredient,
		MealType:       req.MealType,
		Price:          req.Price,
	})
	if err != nil {
		h.logger.Error("create menu failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu": menu})
}

func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu id"})
		return
	}

	var req types.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.CuisineStyle != nil {
		patch["cuisine_style"] = *req.CuisineStyle
	}
	if req.MainIngredient != nil {
		patch["main_ingredient"] = *req.MainIngredient
	}
	if req.MealType != nil {
		patch["meal_type"] = *req.MealType
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.Bookmark != nil {
		patch["bookmark"] = *req.Bookmark
	}

	menu, err := h.menus.UpdatePatch(c.Request.Context(), id, patch)
	if err != nil {
		h.logger.Error("update menu failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

func (h *MenuHandler) UpdateMenuBookmark(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu id"})
		return
	}

	var req types.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.menus.UpdateBookmark(c.Request.Context(), id, req.Bookmark); err != nil {
		h.logger.Error("update menu bookmark failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bookmark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark updated"})
}

// ListRestaurantsForMenu is the join view from the menu side.
func (h *MenuHandler) ListRestaurantsForMenu(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu id"})
		return
	}

	restaurants, err := h.relations.RestaurantsForMenu(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list restaurants for menu failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}
