package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/service"
	"github.com/matjipduo/backend/internal/types"
)

// RestaurantHandler exposes the restaurant table plus its join views.
type RestaurantHandler struct {
	restaurants *service.RestaurantService
	relations   *service.RelationService
	logger      *zap.Logger
}

// NewRestaurantHandler creates a new RestaurantHandler instance.
func NewRestaurantHandler(restaurants *service.RestaurantService, relations *service.RelationService, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, relations: relations, logger: logger}
}

func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	var filter types.RestaurantFilter
	if v := c.Query("address"); v != "" {
		filter.Address = &v
	}
	if v := c.Query("rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		filter.Rating = &f
	}
	filter.OnlyBookmarked = c.Query("bookmarked") == "true"

	// "all=true" is the plain newest-first listing used by the manage
	// screen; the filtered listing orders by name instead.
	if c.Query("all") == "true" {
		restaurants, err := h.restaurants.ListAll(c.Request.Context())
		if err != nil {
			h.logger.Error("list all restaurants failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
		return
	}

	restaurants, err := h.restaurants.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list restaurants failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req types.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.Create(c.Request.Context(), model.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		OuterMapURL: req.OuterMapURL,
	})
	if err != nil {
		h.logger.Error("create restaurant failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req types.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.OpenTime != nil {
		patch["openTime"] = *req.OpenTime
	}
	if req.CloseTime != nil {
		patch["closeTime"] = *req.CloseTime
	}
	if req.OuterMapURL != nil {
		patch["outerMapUrl"] = *req.OuterMapURL
	}
	if req.Bookmark != nil {
		patch["bookmark"] = *req.Bookmark
	}
	if req.Rating != nil {
		patch["rating"] = *req.Rating
	}

	restaurant, err := h.restaurants.UpdatePatch(c.Request.Context(), id, patch)
	if err != nil {
		h.logger.Error("update restaurant failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *RestaurantHandler) UpdateRestaurantBookmark(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req types.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.restaurants.UpdateBookmark(c.Request.Context(), id, req.Bookmark); err != nil {
		h.logger.Error("update restaurant bookmark failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bookmark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark updated"})
}

// ListRegions feeds the region dropdown with the distinct address
// region tokens.
func (h *RestaurantHandler) ListRegions(c *gin.Context) {
	regions, err := h.restaurants.Regions(c.Request.Context())
	if err != nil {
		h.logger.Error("list regions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch regions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// ListMenusForRestaurant is the join view from the restaurant side.
func (h *RestaurantHandler) ListMenusForRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	menus, err := h.relations.MenusForRestaurant(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list menus for restaurant failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// ListMenuDetails is the enriched detail view: each relation paired
// with its menu, course-ranked.
func (h *RestaurantHandler) ListMenuDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	details, err := h.relations.MenuDetails(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list menu details failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": details})
}
