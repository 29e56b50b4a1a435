package entity

import (
	"gorm.io/gorm"
)

// PayItForwardDonation is append-only; donations are never edited.
type PayItForwardDonation struct {
	gorm.Model
	DonorName string  `gorm:"not null" json:"donorName"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Notes     string  `json:"notes"`
}

func (PayItForwardDonation) TableName() string { return "pay_it_forward_donations" }
