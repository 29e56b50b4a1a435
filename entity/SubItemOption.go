package entity

import (
	"gorm.io/gorm"
)

// SubItemOption is an optional side dish offered alongside a meal.
type SubItemOption struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Active    bool   `gorm:"default:true" json:"active"`
	SortOrder int    `json:"sortOrder"`
}
