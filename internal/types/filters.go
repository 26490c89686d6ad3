package types

// MenuFilter narrows menu queries. Every field is independently
// nullable; nil means "no constraint on this dimension". All set
// fields apply conjunctively. Changing a filter always replaces the
// whole record (value semantics), it is never mutated in place.
type MenuFilter struct {
	CuisineStyle   *string `json:"cuisine_style"`
	MainIngredient *string `json:"main_ingredient"`
	MealType       *string `json:"meal_type"`
	PriceMin       *int    `json:"priceMin"`
	PriceMax       *int    `json:"priceMax"`
}

// RestaurantFilter narrows restaurant queries. Address is a
// case-insensitive substring match; Rating is a floor.
type RestaurantFilter struct {
	Address        *string  `json:"address"`
	Rating         *float64 `json:"rating"`
	OnlyBookmarked bool     `json:"onlyBookmarked"`
}
