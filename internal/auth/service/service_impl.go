package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/gasdepot/internal/auth/domain"
	"github.com/smallbiznis/gasdepot/internal/auth/password"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("auth.service"),
	}
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	var user domain.User
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, username, password, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&user).Error
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if user.ID == 0 || !password.Verify(user.Password, req.Password) {
		s.log.Warn("login rejected", zap.String("username", username))
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{Username: user.Username}, nil
}
