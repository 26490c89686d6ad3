package model

import "time"

// Menu is a dish we track independently of any one restaurant. The
// categorical columns hold values from the enum tables in enums.go;
// all of them are nullable, null meaning "never recorded".
type Menu struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	CuisineStyle   *string   `gorm:"column:cuisine_style;size:50" json:"cuisine_style"`
	MainIngredient *string   `gorm:"column:main_ingredient;size:50" json:"main_ingredient"`
	MealType       *string   `gorm:"column:meal_type;size:50" json:"meal_type"`
	Price          *int      `gorm:"column:price" json:"price"`
	Bookmark       *bool     `gorm:"column:bookmark" json:"bookmark"`
}

func (Menu) TableName() string {
	return "menu"
}

// Bookmarked treats a missing bookmark flag as false.
func (m Menu) Bookmarked() bool {
	return m.Bookmark != nil && *m.Bookmark
}
