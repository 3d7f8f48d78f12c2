package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gasdepot/internal/customer/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, customer *domain.Customer) (*domain.Customer, error) {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "aadhar"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "updated_at"}),
	}).Create(customer).Error
	if err != nil {
		return nil, err
	}

	// Re-read by aadhar: when the row pre-existed the surviving ID is
	// the original one, not the ID generated for this call.
	return r.FindByAadhar(ctx, db, customer.Aadhar)
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, aadhar, phone, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) FindByAadhar(ctx context.Context, db *gorm.DB, aadhar string) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, aadhar, phone, created_at, updated_at
		 FROM customers WHERE aadhar = ?`,
		aadhar,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) SearchByName(ctx context.Context, db *gorm.DB, substring string) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	pattern := "%" + strings.ToLower(substring) + "%"
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name asc, id asc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
