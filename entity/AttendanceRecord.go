package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Attendee is one customer's slice of a weekly snapshot.
type Attendee struct {
	Name        string  `json:"name"`
	Orders      int     `json:"orders"`
	TotalSpent  float64 `json:"totalSpent"`
	TableNumber string  `json:"tableNumber,omitempty"`
}

// AttendeeList is stored as a JSON array in a TEXT column.
type AttendeeList []Attendee

func (a AttendeeList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *AttendeeList) Scan(v any) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, a)
	case string:
		return json.Unmarshal([]byte(data), a)
	case nil:
		*a = nil
		return nil
	default:
		return errors.New("unsupported type for AttendeeList")
	}
}

// AttendanceRecord is a snapshot of a week's turnout, generated by an
// admin action and never mutated afterwards.
type AttendanceRecord struct {
	gorm.Model
	Week            string  `gorm:"index" json:"week"`
	TotalAttendees  int     `json:"totalAttendees"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	TotalRevenue    float64 `json:"totalRevenue"`

	Attendees AttendeeList `gorm:"type:text" json:"attendees"`
}
