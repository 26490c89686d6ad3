package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/matjipduo/backend/internal/model"
)

// mealTypeRank is the fixed course order used to sort a restaurant's
// menu detail view: mains, then sides, then desserts. It is purely a
// sort key; any meal_type not in the list (including the usual
// breakfast/lunch values) sorts last.
var mealTypeRank = []string{"메인", "사이드", "디저트"}

func rankOfMealType(mealType *string) int {
	if mealType == nil {
		return len(mealTypeRank)
	}
	for i, v := range mealTypeRank {
		if v == *mealType {
			return i
		}
	}
	return len(mealTypeRank)
}

// MenuDetail pairs a relation row with the menu it points at, giving
// the relation-specific price and note next to the menu's own
// attributes.
type MenuDetail struct {
	Menu     model.Menu     `json:"menu"`
	Relation model.Relation `json:"relation"`
}

// RelationService wraps the restaurant_menu join table and builds the
// in-memory join views over it.
type RelationService struct {
	db          *gorm.DB
	menus       *MenuService
	restaurants *RestaurantService
}

// NewRelationService creates a new RelationService instance.
func NewRelationService(db *gorm.DB, menus *MenuService, restaurants *RestaurantService) *RelationService {
	return &RelationService{db: db, menus: menus, restaurants: restaurants}
}

// CreateMany bulk-inserts relation rows. An empty batch is a no-op
// that performs no query; some stores reject empty inserts outright.
func (s *RelationService) CreateMany(ctx context.Context, relations []model.Relation) error {
	if len(relations) == 0 {
		return nil
	}
	for i := range relations {
		relations[i].ID = 0
	}
	if err := s.db.WithContext(ctx).Create(&relations).Error; err != nil {
		return persistErr("create relations", err)
	}
	return nil
}

// DeleteByID removes one relation row. A zero id is a guarded no-op,
// not an error.
func (s *RelationService) DeleteByID(ctx context.Context, id int64) error {
	if id == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&model.Relation{}, "id = ?", id).Error; err != nil {
		return persistErr("delete relation", err)
	}
	return nil
}

// ListByRestaurant returns a restaurant's relation rows, newest first.
func (s *RelationService) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Relation, error) {
	var relations []model.Relation
	if err := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("created_at DESC").Find(&relations).Error; err != nil {
		return nil, persistErr("list relations by restaurant", err)
	}
	return relations, nil
}

// ListByMenu returns a menu's relation rows, newest first.
func (s *RelationService) ListByMenu(ctx context.Context, menuID int64) ([]model.Relation, error) {
	var relations []model.Relation
	if err := s.db.WithContext(ctx).Where("menu_id = ?", menuID).Order("created_at DESC").Find(&relations).Error; err != nil {
		return nil, persistErr("list relations by menu", err)
	}
	return relations, nil
}

// MenusForRestaurant returns the menus served at a restaurant in
// exactly two round trips: relations first, then one bulk fetch of
// the distinct menu ids. Zero relations returns an empty list without
// the second fetch.
func (s *RelationService) MenusForRestaurant(ctx context.Context, restaurantID int64) ([]model.Menu, error) {
	relations, err := s.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	ids := distinctIDs(relations, func(r model.Relation) int64 { return r.MenuID })
	return s.menus.GetByIDs(ctx, ids)
}

// RestaurantsForMenu returns the restaurants serving a menu, same
// two-round-trip shape as MenusForRestaurant.
func (s *RelationService) RestaurantsForMenu(ctx context.Context, menuID int64) ([]model.Restaurant, error) {
	relations, err := s.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	ids := distinctIDs(relations, func(r model.Relation) int64 { return r.RestaurantID })
	return s.restaurants.GetByIDs(ctx, ids)
}

// MenuDetails builds the restaurant detail view: every relation
// paired with its menu, sorted by course rank then menu name. A
// relation whose menu no longer resolves is dropped silently. The
// ordering is a pure function of the fetched rows and is recomputed
// on every call.
func (s *RelationService) MenuDetails(ctx context.Context, restaurantID int64) ([]MenuDetail, error) {
	relations, err := s.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	ids := distinctIDs(relations, func(r model.Relation) int64 { return r.MenuID })
	menus, err := s.menus.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Menu, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	details := make([]MenuDetail, 0, len(relations))
	for _, rel := range relations {
		menu, ok := byID[rel.MenuID]
		if !ok {
			continue // orphaned relation
		}
		details = append(details, MenuDetail{Menu: menu, Relation: rel})
	}

	sort.SliceStable(details, func(i, j int) bool {
		ri, rj := rankOfMealType(details[i].Menu.MealType), rankOfMealType(details[j].Menu.MealType)
		if ri != rj {
			return ri < rj
		}
		return details[i].Menu.Name < details[j].Menu.Name
	})
	return details, nil
}

func distinctIDs(relations []model.Relation, key func(model.Relation) int64) []int64 {
	seen := make(map[int64]struct{}, len(relations))
	ids := make([]int64, 0, len(relations))
	for _, r := range relations {
		id := key(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
