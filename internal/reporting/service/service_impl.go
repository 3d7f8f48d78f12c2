package service

import (
	"context"
	"errors"
	"strings"

	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	historydomain "github.com/smallbiznis/gasdepot/internal/history/domain"
	"github.com/smallbiznis/gasdepot/internal/reporting/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Customers customerdomain.Service
	CustRepo  customerdomain.Repository
	Cylinders cylinderdomain.Repository
	History   historydomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	customers customerdomain.Service
	custRepo  customerdomain.Repository
	cylinders cylinderdomain.Repository
	history   historydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("reporting.service"),
		customers: p.Customers,
		custRepo:  p.CustRepo,
		cylinders: p.Cylinders,
		history:   p.History,
	}
}

func (s *Service) Counts(ctx context.Context) ([]domain.TypeCount, error) {
	byType, err := s.cylinders.CountsByType(ctx, s.db)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.TypeCount, 0, len(gastype.Order))
	for _, t := range gastype.Order {
		count := byType[t.Name]
		counts = append(counts, domain.TypeCount{
			Type:          t.Name,
			ActiveCount:   count.ActiveCount,
			InactiveCount: count.InactiveCount,
		})
	}
	return counts, nil
}

func (s *Service) ActiveCustomersByType(ctx context.Context, typeName string) ([]customerdomain.Customer, error) {
	t, ok := gastype.Lookup(typeName)
	if !ok {
		return nil, gastype.ErrInvalidGasType
	}

	var customers []customerdomain.Customer
	err := s.db.WithContext(ctx).Raw(
		`SELECT DISTINCT c.id, c.name, c.aadhar, c.phone, c.created_at, c.updated_at
		 FROM customers c
		 JOIN cylinders cy ON cy.customer_id = c.id
		 WHERE cy.type = ? AND cy.status = ?
		 ORDER BY c.name ASC, c.id ASC`,
		t.Name,
		cylinderdomain.StatusActive,
	).Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Service) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResult{}, domain.ErrEmptyQuery
	}

	// 1. Exact aadhar.
	customer, err := s.customers.FindByAadhar(ctx, query)
	switch {
	case err == nil:
		detail, err := s.customerDetail(ctx, customer)
		if err != nil {
			return domain.SearchResult{}, err
		}
		return domain.SearchResult{Kind: domain.SearchKindCustomer, Customer: &detail}, nil
	case errors.Is(err, customerdomain.ErrNotFound):
	default:
		return domain.SearchResult{}, err
	}

	// 2. Partial name; a unique match behaves like an exact one.
	matches, err := s.customers.SearchByName(ctx, query)
	if err != nil {
		return domain.SearchResult{}, err
	}
	switch {
	case len(matches) == 1:
		detail, err := s.customerDetail(ctx, matches[0])
		if err != nil {
			return domain.SearchResult{}, err
		}
		return domain.SearchResult{Kind: domain.SearchKindCustomer, Customer: &detail}, nil
	case len(matches) > 1:
		return domain.SearchResult{Kind: domain.SearchKindCustomers, Customers: matches}, nil
	}

	// 3. Exact cylinder number.
	cyl, err := s.cylinders.Get(ctx, s.db, strings.ToUpper(query))
	if err != nil {
		return domain.SearchResult{}, err
	}
	if cyl != nil {
		entries, err := s.history.ByCylinder(ctx, s.db, cyl.CylinderNumber)
		if err != nil {
			return domain.SearchResult{}, err
		}
		return domain.SearchResult{
			Kind: domain.SearchKindCylinder,
			Cylinder: &domain.CylinderDetail{
				Cylinder: *cyl,
				History:  collect(entries),
			},
		}, nil
	}

	return domain.SearchResult{}, domain.ErrNotFound
}

func (s *Service) CustomerDetail(ctx context.Context, customerID string) (domain.CustomerDetail, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerdomain.ErrInvalidID) || errors.Is(err, customerdomain.ErrNotFound) {
			return domain.CustomerDetail{}, domain.ErrNotFound
		}
		return domain.CustomerDetail{}, err
	}
	return s.customerDetail(ctx, customer)
}

func (s *Service) History(ctx context.Context, req domain.HistoryRequest) ([]historydomain.Entry, error) {
	entries, err := s.history.All(ctx, s.db, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	return collect(entries), nil
}

func (s *Service) customerDetail(ctx context.Context, customer customerdomain.Customer) (domain.CustomerDetail, error) {
	var rows []struct {
		Type  string
		Total int64
	}
	err := s.db.WithContext(ctx).Raw(
		`SELECT type, COUNT(*) AS total
		 FROM cylinders
		 WHERE customer_id = ? AND status = ?
		 GROUP BY type`,
		customer.ID,
		cylinderdomain.StatusActive,
	).Scan(&rows).Error
	if err != nil {
		return domain.CustomerDetail{}, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Total
	}

	entries, err := s.history.ByCustomer(ctx, s.db, customer.ID)
	if err != nil {
		return domain.CustomerDetail{}, err
	}

	return domain.CustomerDetail{
		Customer: customer,
		Counts:   counts,
		History:  collect(entries),
	}, nil
}

func collect(items []*historydomain.Entry) []historydomain.Entry {
	entries := make([]historydomain.Entry, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		entries = append(entries, *item)
	}
	return entries
}
