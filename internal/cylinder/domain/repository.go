package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListFilter narrows List by status and/or gas type; zero values match
// everything.
type ListFilter struct {
	Status Status
	Type   string
}

type Repository interface {
	// Get returns nil when no cylinder carries the number.
	Get(ctx context.Context, db *gorm.DB, cylinderNumber string) (*Cylinder, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Cylinder, error)

	// TryActivate transitions inactive->active and records the owner in
	// one conditional UPDATE. It reports false when the cylinder is
	// missing, already active, or of a different type; nothing is
	// mutated in that case.
	TryActivate(ctx context.Context, db *gorm.DB, cylinderNumber, expectedType string, customerID snowflake.ID) (bool, error)

	// Deactivate transitions active->inactive and clears the owner,
	// reporting false when the cylinder was not active.
	Deactivate(ctx context.Context, db *gorm.DB, cylinderNumber string) (bool, error)

	// CountsByType returns totals keyed by gas type for rows that
	// exist; absent types are the caller's concern.
	CountsByType(ctx context.Context, db *gorm.DB) (map[string]StatusCount, error)

	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
