package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is the single counter operator. The password column stores a
// bcrypt hash, never plaintext.
type User struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Username  string       `gorm:"not null;uniqueIndex:ux_users_username" json:"username"`
	Password  string       `gorm:"not null" json:"-"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
