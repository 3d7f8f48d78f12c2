package domain

import (
	"context"
	"errors"
)

type UpsertRequest struct {
	Name   string
	Aadhar string
	Phone  string
}

type Service interface {
	Upsert(context.Context, UpsertRequest) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	FindByAadhar(ctx context.Context, aadhar string) (Customer, error)
	SearchByName(ctx context.Context, substring string) ([]Customer, error)
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidAadhar = errors.New("invalid_aadhar")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("customer_not_found")
)
