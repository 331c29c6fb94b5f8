package database

import (
	"strings"

	"gorm.io/gorm"
)

// CityContains filters rows whose city contains the query as a
// case-insensitive substring, so "new york" matches "New York, NY".
// An empty query leaves the statement untouched.
func CityContains(city string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q := strings.ToLower(strings.TrimSpace(city))
		if q == "" {
			return db
		}
		return db.Where("LOWER(city) LIKE ?", "%"+q+"%")
	}
}

// OwnedBy filters rows by their owning user column.
func OwnedBy(column, userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			return db
		}
		return db.Where(column+" = ?", userID)
	}
}

// AgeBetween applies inclusive optional age bounds.
func AgeBetween(min, max *int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where("age >= ?", *min)
		}
		if max != nil {
			db = db.Where("age <= ?", *max)
		}
		return db
	}
}
