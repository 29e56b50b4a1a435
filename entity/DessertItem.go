package entity

import (
	"gorm.io/gorm"
)

type DessertItem struct {
	gorm.Model
	// uniqueness is enforced in the service against live rows only;
	// a DB unique index would collide with soft-deleted names
	Name           string `gorm:"index;not null" json:"name"`
	StartingStock  int    `json:"startingStock"`
	RemainingStock int    `json:"remainingStock"`
	Active         bool   `gorm:"default:true" json:"active"`
}

func (DessertItem) TableName() string { return "dessert_inventory" }
