package boundaries

import (
	"gorm.io/gorm"
)

type ConditionFunc func(*gorm.DB) *gorm.DB

func WithMethod(method string) ConditionFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("method = ?", method)
	}
}

// WithCountry matches boundaries where the given country appears on
// either side of the pair.
func WithCountry(country string) ConditionFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("lower(country1) = lower(?) OR lower(country2) = lower(?)", country, country)
	}
}

func WithFoundOnly() ConditionFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("found = ?", true)
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit)
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset)
	}
}
