package model

import (
	"strings"
	"time"
)

// Restaurant is a place the two of us have been to or want to try.
// Column names are the wire contract with the existing store and must
// stay exactly as they are (openTime, closeTime, outerMapUrl are
// camel-cased in the table).
type Restaurant struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	OpenTime    *string   `gorm:"column:openTime;size:20" json:"openTime"`
	CloseTime   *string   `gorm:"column:closeTime;size:20" json:"closeTime"`
	Bookmark    *bool     `gorm:"column:bookmark" json:"bookmark"`
	OuterMapURL *string   `gorm:"column:outerMapUrl;size:512" json:"outerMapUrl"`
	Rating      *float64  `gorm:"column:rating" json:"rating"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}

// Bookmarked treats a missing bookmark flag as false.
func (r Restaurant) Bookmarked() bool {
	return r.Bookmark != nil && *r.Bookmark
}

// Region extracts the region token from a free-text address. By
// convention the second whitespace-separated token is the district
// (e.g. "서울 마포구 ..." -> "마포구"); a single-token address is its
// own region.
func (r Restaurant) Region() string {
	fields := splitAddress(r.Address)
	if len(fields) == 0 {
		return ""
	}
	if len(fields) > 1 {
		return fields[1]
	}
	return fields[0]
}

func splitAddress(addr string) []string {
	return strings.Fields(addr)
}
