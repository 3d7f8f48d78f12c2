package domain

import (
	"context"
	"errors"
)

type LoginRequest struct {
	Username string
	Password string
}

type LoginResponse struct {
	Username string `json:"username"`
}

type Service interface {
	Login(context.Context, LoginRequest) (LoginResponse, error)
}

var ErrInvalidCredentials = errors.New("invalid_credentials")
