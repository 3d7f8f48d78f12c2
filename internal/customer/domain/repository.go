package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// Upsert inserts the customer or, when the aadhar already exists,
	// updates name/phone on the existing row. The unique index on
	// aadhar makes this safe under concurrent calls; the returned row
	// always carries the surviving ID.
	Upsert(ctx context.Context, db *gorm.DB, customer *Customer) (*Customer, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByAadhar(ctx context.Context, db *gorm.DB, aadhar string) (*Customer, error)
	// SearchByName matches a case-insensitive substring.
	SearchByName(ctx context.Context, db *gorm.DB, substring string) ([]*Customer, error)
}
