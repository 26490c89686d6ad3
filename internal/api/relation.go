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

// RelationHandler exposes the restaurant_menu join table.
type RelationHandler struct {
	relations *service.RelationService
	logger    *zap.Logger
}

// NewRelationHandler creates a new RelationHandler instance.
func NewRelationHandler(relations *service.RelationService, logger *zap.Logger) *RelationHandler {
	return &RelationHandler{relations: relations, logger: logger}
}

// CreateRelations bulk-inserts relation rows. An empty array is
// accepted and does nothing.
func (h *RelationHandler) CreateRelations(c *gin.Context) {
	var reqs []types.CreateRelationRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]model.Relation, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, model.Relation{
			RestaurantID: r.RestaurantID,
			MenuID:       r.MenuID,
			Price:        r.Price,
			IsInfinit:    r.IsInfinit,
			Note:         r.Note,
		})
	}

	if err := h.relations.CreateMany(c.Request.Context(), rows); err != nil {
		h.logger.Error("create relations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create relations"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(rows)})
}

func (h *RelationHandler) DeleteRelation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relation id"})
		return
	}

	if err := h.relations.DeleteByID(c.Request.Context(), id); err != nil {
		h.logger.Error("delete relation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete relation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "relation deleted", "id": id})
}

// ListRelations lists the join rows for one side of the relation,
// picked by the restaurant_id or menu_id query param.
func (h *RelationHandler) ListRelations(c *gin.Context) {
	if v := c.Query("restaurant_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant_id"})
			return
		}
		relations, err := h.relations.ListByRestaurant(c.Request.Context(), id)
		if err != nil {
			h.logger.Error("list relations failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch relations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"relations": relations})
		return
	}

	if v := c.Query("menu_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu_id"})
			return
		}
		relations, err := h.relations.ListByMenu(c.Request.Context(), id)
		if err != nil {
			h.logger.Error("list relations failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch relations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"relations": relations})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id or menu_id is required"})
}
