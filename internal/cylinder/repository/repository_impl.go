package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Get(ctx context.Context, db *gorm.DB, cylinderNumber string) (*domain.Cylinder, error) {
	var cylinder domain.Cylinder
	err := db.WithContext(ctx).Raw(
		`SELECT cylinder_number, type, status, customer_id, created_at, updated_at
		 FROM cylinders WHERE cylinder_number = ?`,
		cylinderNumber,
	).Scan(&cylinder).Error
	if err != nil {
		return nil, err
	}
	if cylinder.CylinderNumber == "" {
		return nil, nil
	}
	return &cylinder, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]*domain.Cylinder, error) {
	var cylinders []*domain.Cylinder
	stmt := db.WithContext(ctx).Model(&domain.Cylinder{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	err := stmt.
		Order("cylinder_number asc").
		Find(&cylinders).Error
	if err != nil {
		return nil, err
	}
	return cylinders, nil
}

// TryActivate is the single atomic check-and-set the sell path relies
// on: status, type and ownership are all verified by the UPDATE's WHERE
// clause, so two transactions can never both claim one cylinder.
func (r *repo) TryActivate(ctx context.Context, db *gorm.DB, cylinderNumber, expectedType string, customerID snowflake.ID) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE cylinders
		 SET status = ?, customer_id = ?, updated_at = ?
		 WHERE cylinder_number = ? AND type = ? AND status = ?`,
		domain.StatusActive,
		customerID,
		time.Now().UTC(),
		cylinderNumber,
		expectedType,
		domain.StatusInactive,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *repo) Deactivate(ctx context.Context, db *gorm.DB, cylinderNumber string) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE cylinders
		 SET status = ?, customer_id = NULL, updated_at = ?
		 WHERE cylinder_number = ? AND status = ?`,
		domain.StatusInactive,
		time.Now().UTC(),
		cylinderNumber,
		domain.StatusActive,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *repo) CountsByType(ctx context.Context, db *gorm.DB) (map[string]domain.StatusCount, error) {
	var rows []struct {
		Type   string
		Status domain.Status
		Total  int64
	}
	err := db.WithContext(ctx).Raw(
		`SELECT type, status, COUNT(*) AS total
		 FROM cylinders GROUP BY type, status`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]domain.StatusCount, len(rows))
	for _, row := range rows {
		count := counts[row.Type]
		switch row.Status {
		case domain.StatusActive:
			count.ActiveCount = row.Total
		case domain.StatusInactive:
			count.InactiveCount = row.Total
		}
		counts[row.Type] = count
	}
	return counts, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Cylinder{}).Count(&total).Error
	return total, err
}
