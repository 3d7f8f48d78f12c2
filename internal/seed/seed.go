package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/gasdepot/internal/auth/domain"
	"github.com/smallbiznis/gasdepot/internal/auth/password"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	"github.com/smallbiznis/gasdepot/pkg/db"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// EnsureCylinders provisions the fixed inventory on first startup:
// countPerType inactive cylinders per gas type, numbered 1..countPerType
// in each type's prefix namespace. The whole seed is a no-op when any
// cylinder row already exists, so restarts never duplicate stock.
func EnsureCylinders(conn *gorm.DB, countPerType int) error {
	if conn == nil {
		return errors.New("seed database handle is required")
	}
	if countPerType <= 0 {
		return errors.New("seed count per type must be positive")
	}

	ctx := context.Background()
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.WithContext(ctx).Model(&cylinderdomain.Cylinder{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		now := time.Now().UTC()
		cylinders := make([]cylinderdomain.Cylinder, 0, insertBatchSize)
		for _, t := range gastype.Order {
			for seq := 1; seq <= countPerType; seq++ {
				cylinders = append(cylinders, cylinderdomain.Cylinder{
					CylinderNumber: t.Identifier(seq),
					Type:           t.Name,
					Status:         cylinderdomain.StatusInactive,
					CreatedAt:      now,
					UpdatedAt:      now,
				})
			}
		}

		return tx.WithContext(ctx).CreateInBatches(&cylinders, insertBatchSize).Error
	})
}

// EnsureOperator provisions the single counter credential once, when
// the users table is empty. It never overwrites an existing credential
// on restart.
func EnsureOperator(conn *gorm.DB, username, plainPassword string) error {
	if conn == nil {
		return errors.New("seed database handle is required")
	}
	username = strings.TrimSpace(username)
	if username == "" || plainPassword == "" {
		return errors.New("operator credential is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.WithContext(ctx).Model(&authdomain.User{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		hashed, err := password.Hash(plainPassword)
		if err != nil {
			return err
		}

		insertErr := tx.WithContext(ctx).Exec(
			`INSERT INTO users (id, username, password, created_at) VALUES (?, ?, ?, ?)`,
			node.Generate(),
			username,
			hashed,
			time.Now().UTC(),
		).Error
		// Two instances can both pass the empty-table check; the unique
		// index on username decides the race and the loser is fine.
		if db.IsDuplicateKeyErr(insertErr) {
			return nil
		}
		return insertErr
	})
}
