package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository is append-only; entries are never updated or deleted. All
// queries return newest-first.
type Repository interface {
	Append(ctx context.Context, db *gorm.DB, entry *Entry) error
	ByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*Entry, error)
	ByCylinder(ctx context.Context, db *gorm.DB, cylinderNumber string) ([]*Entry, error)
	All(ctx context.Context, db *gorm.DB, limit, offset int) ([]*Entry, error)
}
