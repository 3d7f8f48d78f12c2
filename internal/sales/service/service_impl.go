package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	historydomain "github.com/smallbiznis/gasdepot/internal/history/domain"
	"github.com/smallbiznis/gasdepot/internal/sales/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Customers customerdomain.Service
	CustRepo  customerdomain.Repository
	Cylinders cylinderdomain.Repository
	History   historydomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	customers customerdomain.Service
	custRepo  customerdomain.Repository
	cylinders cylinderdomain.Repository
	history   historydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("sales.service"),
		genID:     p.GenID,
		customers: p.Customers,
		custRepo:  p.CustRepo,
		cylinders: p.Cylinders,
		history:   p.History,
	}
}

func (s *Service) Sell(ctx context.Context, req domain.SellRequest) (domain.SellResponse, error) {
	typeName := strings.TrimSpace(req.Type)
	name := strings.TrimSpace(req.Customer.Name)
	aadhar := strings.TrimSpace(req.Customer.Aadhar)
	if typeName == "" || strings.TrimSpace(req.CylinderNumbersInput) == "" || name == "" || aadhar == "" {
		return domain.SellResponse{}, domain.ErrMissingFields
	}

	numbers, err := gastype.Resolve(typeName, req.CylinderNumbersInput)
	if err != nil {
		return domain.SellResponse{}, err
	}

	// The upsert stays outside the inventory transaction: a customer
	// record is a benign side effect and survives a failed batch.
	customer, err := s.customers.Upsert(ctx, customerdomain.UpsertRequest{
		Name:   name,
		Aadhar: aadhar,
		Phone:  req.Customer.Phone,
	})
	if err != nil {
		return domain.SellResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, number := range numbers {
			ok, err := s.cylinders.TryActivate(ctx, tx, number, typeName, customer.ID)
			if err != nil {
				return err
			}
			if !ok {
				// Returning the error rolls back every activation in
				// this batch.
				return &domain.ConflictError{CylinderNumber: number}
			}

			customerID := customer.ID
			if err := s.history.Append(ctx, tx, &historydomain.Entry{
				ID:             s.genID.Generate(),
				Action:         historydomain.ActionSell,
				CylinderNumber: number,
				CylinderType:   typeName,
				CustomerID:     &customerID,
				CustomerName:   customer.Name,
				Aadhar:         customer.Aadhar,
				Phone:          customer.Phone,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.SellResponse{}, err
	}

	s.log.Info("cylinders sold",
		zap.String("type", typeName),
		zap.Int("count", len(numbers)),
		zap.String("customer_id", customer.ID.String()),
	)

	return domain.SellResponse{Assigned: numbers, Customer: customer}, nil
}

func (s *Service) Return(ctx context.Context, req domain.ReturnRequest) error {
	number := strings.ToUpper(strings.TrimSpace(req.CylinderNumber))
	if number == "" {
		return domain.ErrInvalidReturn
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cyl, err := s.cylinders.Get(ctx, tx, number)
		if err != nil {
			return err
		}
		if cyl == nil || cyl.Status != cylinderdomain.StatusActive {
			return domain.ErrInvalidReturn
		}

		entry := historydomain.Entry{
			ID:             s.genID.Generate(),
			Action:         historydomain.ActionReturn,
			CylinderNumber: cyl.CylinderNumber,
			CylinderType:   cyl.Type,
			CreatedAt:      time.Now().UTC(),
		}

		// Owner may be missing if data is inconsistent; record the
		// return with empty customer fields rather than failing.
		if cyl.CustomerID != nil {
			owner, err := s.custRepo.FindByID(ctx, tx, *cyl.CustomerID)
			if err != nil {
				return err
			}
			if owner != nil {
				ownerID := owner.ID
				entry.CustomerID = &ownerID
				entry.CustomerName = owner.Name
				entry.Aadhar = owner.Aadhar
				entry.Phone = owner.Phone
			}
		}

		ok, err := s.cylinders.Deactivate(ctx, tx, number)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidReturn
		}

		return s.history.Append(ctx, tx, &entry)
	})
}
