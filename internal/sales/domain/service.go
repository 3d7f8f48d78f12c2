package domain

import (
	"context"
	"errors"
	"fmt"

	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
)

type SellCustomer struct {
	Name   string
	Aadhar string
	Phone  string
}

type SellRequest struct {
	Type string
	// CylinderNumbersInput is the operator's raw list/range shorthand,
	// e.g. "1,3-5".
	CylinderNumbersInput string
	Customer             SellCustomer
}

type SellResponse struct {
	Assigned []string                `json:"assigned"`
	Customer customerdomain.Customer `json:"customer"`
}

type ReturnRequest struct {
	CylinderNumber string
}

type Service interface {
	// Sell assigns every resolved cylinder to the customer or none of
	// them: the first conflicting cylinder aborts the whole batch.
	Sell(context.Context, SellRequest) (SellResponse, error)
	Return(context.Context, ReturnRequest) error
}

var (
	ErrMissingFields = errors.New("missing_fields")
	ErrInvalidReturn = errors.New("invalid_return")
)

// ConflictError names the cylinder that blocked a sell batch. It
// unwraps to the cylinder domain's conflict sentinel.
type ConflictError struct {
	CylinderNumber string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cylinder %s not available", e.CylinderNumber)
}

func (e *ConflictError) Unwrap() error {
	return cylinderdomain.ErrConflict
}
