package types

// LoginRequest carries the shared passphrase. There is no user
// identity; whoever knows the phrase is "us".
type LoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// CreateMenuRequest mirrors the menu form. Bookmark is intentionally
// absent: new rows always start unbookmarked.
type CreateMenuRequest struct {
	Name           string  `json:"name" binding:"required"`
	CuisineStyle   *string `json:"cuisine_style"`
	MainIngredient *string `json:"main_ingredient"`
	MealType       *string `json:"meal_type"`
	Price          *int    `json:"price"`
}

// UpdateMenuRequest is a partial patch: an omitted key leaves the
// column unchanged.
type UpdateMenuRequest struct {
	Name           *string `json:"name"`
	CuisineStyle   *string `json:"cuisine_style"`
	MainIngredient *string `json:"main_ingredient"`
	MealType       *string `json:"meal_type"`
	Price          *int    `json:"price"`
	Bookmark       *bool   `json:"bookmark"`
}

// CreateRestaurantRequest mirrors the restaurant form. Bookmark and
// rating are absent on purpose: they default to false and 0.
type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	OpenTime    *string `json:"openTime"`
	CloseTime   *string `json:"closeTime"`
	OuterMapURL *string `json:"outerMapUrl"`
}

// UpdateRestaurantRequest is a partial patch: an omitted key leaves
// the column unchanged.
type UpdateRestaurantRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	OpenTime    *string  `json:"openTime"`
	CloseTime   *string  `json:"closeTime"`
	OuterMapURL *string  `json:"outerMapUrl"`
	Bookmark    *bool    `json:"bookmark"`
	Rating      *float64 `json:"rating"`
}

// UpdateBookmarkRequest sets the bookmark flag to an explicit value.
type UpdateBookmarkRequest struct {
	Bookmark bool `json:"bookmark"`
}

// CreateRelationRequest is one row of a bulk relation insert.
type CreateRelationRequest struct {
	RestaurantID int64   `json:"restaurant_id" binding:"required"`
	MenuID       int64   `json:"menu_id" binding:"required"`
	Price        *int    `json:"price"`
	IsInfinit    *bool   `json:"isInfinit"`
	Note         *string `json:"note"`
}
