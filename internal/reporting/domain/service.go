package domain

import (
	"context"
	"errors"

	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	historydomain "github.com/smallbiznis/gasdepot/internal/history/domain"
)

// TypeCount is one row of the counts board, in canonical display order.
type TypeCount struct {
	Type          string `json:"type"`
	ActiveCount   int64  `json:"active_count"`
	InactiveCount int64  `json:"inactive_count"`
}

// CustomerDetail is a customer plus their per-type active holdings and
// full history.
type CustomerDetail struct {
	Customer customerdomain.Customer `json:"customer"`
	Counts   map[string]int64        `json:"counts"`
	History  []historydomain.Entry   `json:"history"`
}

// CylinderDetail is a cylinder plus its full history.
type CylinderDetail struct {
	Cylinder cylinderdomain.Cylinder `json:"cylinder"`
	History  []historydomain.Entry   `json:"history"`
}

const (
	SearchKindCustomer  = "customer"
	SearchKindCustomers = "customers"
	SearchKindCylinder  = "cylinder"
)

// SearchResult is a tagged union: exactly one of the payload fields is
// populated according to Kind.
type SearchResult struct {
	Kind      string                    `json:"type"`
	Customer  *CustomerDetail           `json:"-"`
	Customers []customerdomain.Customer `json:"customers,omitempty"`
	Cylinder  *CylinderDetail           `json:"-"`
}

type HistoryRequest struct {
	Limit  int
	Offset int
}

type Service interface {
	// Counts reports every known gas type in canonical order,
	// zero-filled for types with no rows.
	Counts(ctx context.Context) ([]TypeCount, error)
	ActiveCustomersByType(ctx context.Context, typeName string) ([]customerdomain.Customer, error)
	// Search tries exact aadhar, then partial name, then exact
	// cylinder number.
	Search(ctx context.Context, query string) (SearchResult, error)
	CustomerDetail(ctx context.Context, customerID string) (CustomerDetail, error)
	History(ctx context.Context, req HistoryRequest) ([]historydomain.Entry, error)
}

var (
	ErrEmptyQuery = errors.New("empty_query")
	ErrNotFound   = errors.New("not_found")
)
