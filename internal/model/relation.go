package model

import "time"

// Relation links one restaurant to one menu it serves, carrying the
// price at that specific place, an unlimited-refill flag and a free
// note. Nothing enforces one relation per (restaurant, menu) pair:
// two priced variants of the same menu at the same place are allowed.
// Relations are never updated in place; corrections are delete and
// re-create.
type Relation struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	RestaurantID int64     `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	MenuID       int64     `gorm:"column:menu_id;not null;index" json:"menu_id"`
	Price        *int      `gorm:"column:price" json:"price"`
	IsInfinit    *bool     `gorm:"column:isInfinit" json:"isInfinit"`
	Note         *string   `gorm:"column:note;size:512" json:"note"`
}

func (Relation) TableName() string {
	return "restaurant_menu"
}
