package domain

import (
	"context"
	"errors"
)

type ListRequest struct {
	Status string
	Type   string
}

type Service interface {
	List(context.Context, ListRequest) ([]Cylinder, error)
	Get(ctx context.Context, cylinderNumber string) (Cylinder, error)
}

var (
	ErrNotFound      = errors.New("cylinder_not_found")
	ErrConflict      = errors.New("cylinder_conflict")
	ErrInvalidStatus = errors.New("invalid_status")
)
