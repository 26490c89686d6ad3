package model

// Category is one value of a closed categorical field together with
// its display metadata. The ordered tables below are the single source
// of truth for every form, filter and seed; value lists are derived,
// never hand-duplicated.
type Category struct {
	Value string `json:"value"`
	Emoji string `json:"emoji"`
}

var CuisineStyles = []Category{
	{Value: "한식", Emoji: "🍚"},
	{Value: "중식", Emoji: "🥟"},
	{Value: "일식", Emoji: "🍣"},
	{Value: "양식", Emoji: "🍝"},
	{Value: "분식", Emoji: "🍢"},
	{Value: "고기", Emoji: "🥩"},
	{Value: "디저트", Emoji: "🍰"},
	{Value: "기타", Emoji: "🍽️"},
}

var MainIngredients = []Category{
	{Value: "돼지", Emoji: "🐷"},
	{Value: "닭", Emoji: "🐔"},
	{Value: "소", Emoji: "🐮"},
	{Value: "양", Emoji: "🐑"},
	{Value: "비건", Emoji: "🥬"},
	{Value: "해산물", Emoji: "🦐"},
	{Value: "기타", Emoji: "🍳"},
}

var MealTypes = []Category{
	{Value: "아침", Emoji: "🌅"},
	{Value: "점심", Emoji: "☀️"},
	{Value: "저녁", Emoji: "🌙"},
	{Value: "야식", Emoji: "🌃"},
	{Value: "간식", Emoji: "🍪"},
}

func values(cats []Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Value
	}
	return out
}

// CuisineStyleValues returns the valid cuisine_style values in display order.
func CuisineStyleValues() []string { return values(CuisineStyles) }

// MainIngredientValues returns the valid main_ingredient values in display order.
func MainIngredientValues() []string { return values(MainIngredients) }

// MealTypeValues returns the valid meal_type values in display order.
func MealTypeValues() []string { return values(MealTypes) }

func contains(cats []Category, v string) bool {
	for _, c := range cats {
		if c.Value == v {
			return true
		}
	}
	return false
}

func IsValidCuisineStyle(v string) bool   { return contains(CuisineStyles, v) }
func IsValidMainIngredient(v string) bool { return contains(MainIngredients, v) }
func IsValidMealType(v string) bool       { return contains(MealTypes, v) }
