package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// StringList is stored as a JSON array in a TEXT column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(v any) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, s)
	case string:
		return json.Unmarshal([]byte(data), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("unsupported type for StringList")
	}
}

type Order struct {
	gorm.Model
	CustomerName string `json:"customerName"`
	MealChoice   string `json:"mealChoice"`

	SubItems StringList `gorm:"type:text" json:"subItems"`

	// desserts are referenced by name, not foreign key; renaming or
	// deleting a dessert does not touch past orders
	Dessert        string `json:"dessert"`
	Drink          string `json:"drink"`
	SpecialRequest string `json:"specialRequest"`
	TableNumber    string `json:"tableNumber"`

	PaidAmount         float64 `json:"paidAmount"`
	PayItForwardAmount float64 `json:"payItForwardAmount"`

	Week string `gorm:"index" json:"week"`
}
