package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a counter customer keyed by aadhar; name and phone track
// whatever the operator entered most recently.
type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Aadhar    string       `gorm:"not null;uniqueIndex:ux_customers_aadhar" json:"aadhar"`
	Phone     string       `json:"phone,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
