package models

import (
	"gorm.io/gorm"
)

// DBStrategy represents a saved trading strategy in the database
type DBStrategy struct {
	gorm.Model
	Name         string `gorm:"index"`
	StrategyType string `gorm:"index"`
	// Dates are opaque strings; they are display data, never read by
	// any calculation
	EntryDate  string
	ExpiryDate string
	Parameters string // JSON string for the named-strategy parameter bag
	CustomLegs string // JSON array of legs for custom strategies
	Notes      string
}

// TableName override for a cleaner table name
func (DBStrategy) TableName() string {
	return "strategies"
}
