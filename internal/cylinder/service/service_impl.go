package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("cylinder.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Cylinder, error) {
	filter := domain.ListFilter{}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case "":
	case string(domain.StatusActive):
		filter.Status = domain.StatusActive
	case string(domain.StatusInactive):
		filter.Status = domain.StatusInactive
	default:
		return nil, domain.ErrInvalidStatus
	}

	typeName := strings.TrimSpace(req.Type)
	if typeName != "" {
		t, ok := gastype.Lookup(typeName)
		if !ok {
			return nil, gastype.ErrInvalidGasType
		}
		filter.Type = t.Name
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	cylinders := make([]domain.Cylinder, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		cylinders = append(cylinders, *item)
	}
	return cylinders, nil
}

func (s *Service) Get(ctx context.Context, cylinderNumber string) (domain.Cylinder, error) {
	cylinderNumber = strings.ToUpper(strings.TrimSpace(cylinderNumber))
	if cylinderNumber == "" {
		return domain.Cylinder{}, domain.ErrNotFound
	}

	item, err := s.repo.Get(ctx, s.db, cylinderNumber)
	if err != nil {
		return domain.Cylinder{}, err
	}
	if item == nil {
		return domain.Cylinder{}, domain.ErrNotFound
	}
	return *item, nil
}
