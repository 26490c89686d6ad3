package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/matjipduo/backend/internal/model"
	"github.com/matjipduo/backend/internal/types"
)

// MenuService wraps all menu table access.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a new MenuService instance.
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// List returns menus matching the filter, ordered by name ascending.
// Nil filter fields impose no constraint; in particular a nil price
// bound generates no range clause at all, which is not the same thing
// as a bound of 0. Rows with a null price never satisfy a range
// clause.
func (s *MenuService) List(ctx context.Context, filter types.MenuFilter, onlyBookmarked bool) ([]model.Menu, error) {
	query := s.db.WithContext(ctx).Model(&model.Menu{})

	if filter.CuisineStyle != nil {
		query = query.Where("cuisine_style = ?", *filter.CuisineStyle)
	}
	if filter.MainIngredient != nil {
		query = query.Where("main_ingredient = ?", *filter.MainIngredient)
	}
	if filter.MealType != nil {
		query = query.Where("meal_type = ?", *filter.MealType)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if onlyBookmarked {
		query = query.Where("bookmark = ?", true)
	}

	var menus []model.Menu
	if err := query.Order("name ASC").Find(&menus).Error; err != nil {
		return nil, persistErr("list menus", err)
	}
	return menus, nil
}

// ListAll returns every menu ordered by name ascending.
func (s *MenuService) ListAll(ctx context.Context) ([]model.Menu, error) {
	return s.List(ctx, types.MenuFilter{}, false)
}

// GetByIDs bulk-fetches menus by primary key. An empty id list
// short-circuits to an empty result without touching the store, so no
// "IN ()" query is ever issued.
func (s *MenuService) GetByIDs(ctx context.Context, ids []int64) ([]model.Menu, error) {
	if len(ids) == 0 {
		return []model.Menu{}, nil
	}
	var menus []model.Menu
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&menus).Error; err != nil {
		return nil, persistErr("get menus by ids", err)
	}
	return menus, nil
}

// Get retrieves a single menu by id.
func (s *MenuService) Get(ctx context.Context, id int64) (*model.Menu, error) {
	var menu model.Menu
	if err := s.db.WithContext(ctx).First(&menu, "id = ?", id).Error; err != nil {
		return nil, persistErr("get menu", err)
	}
	return &menu, nil
}

// Create inserts a new menu and returns the persisted row. The
// bookmark flag always starts false no matter what the caller set.
func (s *MenuService) Create(ctx context.Context, menu model.Menu) (*model.Menu, error) {
	menu.ID = 0
	off := false
	menu.Bookmark = &off
	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return nil, persistErr("create menu", err)
	}
	return &menu, nil
}

// UpdatePatch applies only the supplied columns and returns the
// updated row. An omitted key means "leave unchanged".
func (s *MenuService) UpdatePatch(ctx context.Context, id int64, patch map[string]interface{}) (*model.Menu, error) {
	if len(patch) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.Menu{}).Where("id = ?", id).Updates(patch).Error; err != nil {
			return nil, persistErr("update menu", err)
		}
	}
	return s.Get(ctx, id)
}

// UpdateBookmark sets just the bookmark column. No row is returned;
// the caller already holds the value it asked for.
func (s *MenuService) UpdateBookmark(ctx context.Context, id int64, value bool) error {
	if err := s.db.WithContext(ctx).Model(&model.Menu{}).Where("id = ?", id).Update("bookmark", value).Error; err != nil {
		return persistErr("update menu bookmark", err)
	}
	return nil
}
