package entity

import (
	"gorm.io/gorm"
)

type MealOption struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Active    bool   `gorm:"default:true" json:"active"`
	SortOrder int    `json:"sortOrder"`
}
