package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gasdepot/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}
	aadhar := strings.TrimSpace(req.Aadhar)
	if aadhar == "" {
		return domain.Customer{}, domain.ErrInvalidAadhar
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		Name:      name,
		Aadhar:    aadhar,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.repo.Upsert(ctx, s.db, &customer)
	if err != nil {
		return domain.Customer{}, err
	}
	if saved == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *saved, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) FindByAadhar(ctx context.Context, aadhar string) (domain.Customer, error) {
	aadhar = strings.TrimSpace(aadhar)
	if aadhar == "" {
		return domain.Customer{}, domain.ErrInvalidAadhar
	}

	item, err := s.repo.FindByAadhar(ctx, s.db, aadhar)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) SearchByName(ctx context.Context, substring string) ([]domain.Customer, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, nil
	}

	items, err := s.repo.SearchByName(ctx, s.db, substring)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}
	return customers, nil
}
