package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Action is the kind of counter event a ledger entry records.
type Action string

const (
	ActionSell   Action = "SELL"
	ActionReturn Action = "RETURN"
)

// Entry is one immutable audit record. Customer fields are a snapshot
// taken when the event happened; later edits to the customer row never
// touch history.
type Entry struct {
	ID             snowflake.ID  `gorm:"primaryKey" json:"id"`
	Action         Action        `gorm:"not null" json:"action"`
	CylinderNumber string        `gorm:"not null;index:idx_history_cylinder" json:"cylinder_number"`
	CylinderType   string        `gorm:"not null" json:"cylinder_type"`
	CustomerID     *snowflake.ID `gorm:"index:idx_history_customer" json:"customer_id,omitempty"`
	CustomerName   string        `json:"customer_name,omitempty"`
	Aadhar         string        `json:"aadhar,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "history" }
