package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the two-state cylinder lifecycle.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
)

// Cylinder is one physical cylinder. The number is globally unique and
// the type never changes after seeding; CustomerID is set exactly when
// the cylinder is active.
type Cylinder struct {
	CylinderNumber string        `gorm:"column:cylinder_number;primaryKey" json:"cylinder_number"`
	Type           string        `gorm:"not null;index:idx_cylinders_type_status,priority:1" json:"type"`
	Status         Status        `gorm:"not null;default:inactive;index:idx_cylinders_type_status,priority:2" json:"status"`
	CustomerID     *snowflake.ID `gorm:"index" json:"customer_id,omitempty"`
	CreatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Cylinder) TableName() string { return "cylinders" }

// StatusCount aggregates active/inactive totals for one gas type.
type StatusCount struct {
	ActiveCount   int64 `json:"active_count"`
	InactiveCount int64 `json:"inactive_count"`
}
