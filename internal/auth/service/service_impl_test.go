package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/gasdepot/internal/auth/domain"
	"github.com/smallbiznis/gasdepot/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	require.NoError(t, seed.EnsureOperator(db, "Vijay", "1234"))

	return New(Params{DB: db, Log: zap.NewNop()})
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, domain.LoginRequest{Username: "Vijay", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Vijay", resp.Username)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "Vijay", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
