package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/types"
)

// RestaurantService wraps all restaurant table access.
type RestaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new RestaurantService instance.
func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// List returns restaurants matching the filter, ordered by name
// ascending. Address matching is a case-insensitive substring match.
func (s *RestaurantService) List(ctx context.Context, filter types.RestaurantFilter) ([]model.Restaurant, error) {
	query := s.db.WithContext(ctx).Model(&model.Restaurant{})

	if filter.Address != nil && *filter.Address != "" {
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where("address ILIKE ?", "%"+*filter.Address+"%")
		} else {
			query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(*filter.Address)+"%")
		}
	}
	if filter.Rating != nil {
		query = query.Where("rating >= ?", *filter.Rating)
	}
	if filter.OnlyBookmarked {
		query = query.Where("bookmark = ?", true)
	}

	var restaurants []model.Restaurant
	if err := query.Order("name ASC").Find(&restaurants).Error; err != nil {
		return nil, persistErr("list restaurants", err)
	}
	return restaurants, nil
}

// ListAll returns every restaurant, newest first.
func (s *RestaurantService) ListAll(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&restaurants).Error; err != nil {
		return nil, persistErr("list all restaurants", err)
	}
	return restaurants, nil
}

// GetByIDs bulk-fetches restaurants by primary key. An empty id list
// short-circuits without touching the store.
func (s *RestaurantService) GetByIDs(ctx context.Context, ids []int64) ([]model.Restaurant, error) {
	if len(ids) == 0 {
		return []model.Restaurant{}, nil
	}
	var restaurants []model.Restaurant
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&restaurants).Error; err != nil {
		return nil, persistErr("get restaurants by ids", err)
	}
	return restaurants, nil
}

// Get retrieves a single restaurant by id.
func (s *RestaurantService) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, persistErr("get restaurant", err)
	}
	return &restaurant, nil
}

// Create inserts a new restaurant and returns the persisted row.
// Bookmark always starts false and rating starts at 0 no matter what
// the caller set.
func (s *RestaurantService) Create(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	restaurant.ID = 0
	off := false
	zero := 0.0
	restaurant.Bookmark = &off
	restaurant.Rating = &zero
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, persistErr("create restaurant", err)
	}
	return &restaurant, nil
}

// UpdatePatch applies only the supplied columns and returns the
// updated row.
func (s *RestaurantService) UpdatePatch(ctx context.Context, id int64, patch map[string]interface{}) (*model.Restaurant, error) {
	if len(patch) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Updates(patch).Error; err != nil {
			return nil, persistErr("update restaurant", err)
		}
	}
	return s.Get(ctx, id)
}

// UpdateBookmark sets just the bookmark column.
func (s *RestaurantService) UpdateBookmark(ctx context.Context, id int64, value bool) error {
	if err := s.db.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Update("bookmark", value).Error; err != nil {
		return persistErr("update restaurant bookmark", err)
	}
	return nil
}

// Regions returns the distinct region tokens of every stored address,
// sorted ascending. This feeds the region dropdown; it is recomputed
// from the data on every call.
func (s *RestaurantService) Regions(ctx context.Context) ([]string, error) {
	var addresses []string
	if err := s.db.WithContext(ctx).Model(&model.Restaurant{}).Pluck("address", &addresses).Error; err != nil {
		return nil, persistErr("list regions", err)
	}

	seen := make(map[string]struct{}, len(addresses))
	regions := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		region := (model.Restaurant{Address: addr}).Region()
		if region == "" {
			continue
		}
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions, nil
}
