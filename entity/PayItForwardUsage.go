package entity

import (
	"gorm.io/gorm"
)

// PayItForwardUsage records a draw from the fund, linked to the order
// it subsidised. Append-only.
type PayItForwardUsage struct {
	gorm.Model
	RecipientName string  `gorm:"not null" json:"recipientName"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Notes         string  `json:"notes"`

	OrderID uint `json:"orderId"`
}

func (PayItForwardUsage) TableName() string { return "pay_it_forward_usage" }
