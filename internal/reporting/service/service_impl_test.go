package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	customerrepository "github.com/smallbiznis/gasdepot/internal/customer/repository"
	customerservice "github.com/smallbiznis/gasdepot/internal/customer/service"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	cylinderrepository "github.com/smallbiznis/gasdepot/internal/cylinder/repository"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	historydomain "github.com/smallbiznis/gasdepot/internal/history/domain"
	historyrepository "github.com/smallbiznis/gasdepot/internal/history/repository"
	"github.com/smallbiznis/gasdepot/internal/reporting/domain"
	salesdomain "github.com/smallbiznis/gasdepot/internal/sales/domain"
	salesservice "github.com/smallbiznis/gasdepot/internal/sales/service"
	"github.com/smallbiznis/gasdepot/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	reporting domain.Service
	sales     salesdomain.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cylinderdomain.Cylinder{},
		&customerdomain.Customer{},
		&historydomain.Entry{},
	))
	require.NoError(t, seed.EnsureCylinders(db, 3))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	custRepo := customerrepository.Provide()
	cylRepo := cylinderrepository.Provide()
	histRepo := historyrepository.Provide()

	customers := customerservice.New(customerservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  custRepo,
	})
	sales := salesservice.New(salesservice.Params{
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Customers: customers,
		CustRepo:  custRepo,
		Cylinders: cylRepo,
		History:   histRepo,
	})
	reporting := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Customers: customers,
		CustRepo:  custRepo,
		Cylinders: cylRepo,
		History:   histRepo,
	})

	return &fixture{db: db, reporting: reporting, sales: sales}
}

func (f *fixture) sell(t *testing.T, typeName, input, name, aadhar string) salesdomain.SellResponse {
	t.Helper()
	resp, err := f.sales.Sell(context.Background(), salesdomain.SellRequest{
		Type:                 typeName,
		CylinderNumbersInput: input,
		Customer:             salesdomain.SellCustomer{Name: name, Aadhar: aadhar},
	})
	require.NoError(t, err)
	return resp
}

func TestCounts_CoversEveryTypeInOrder(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1-2", "Asha", "111122223333")

	counts, err := f.reporting.Counts(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, len(gastype.Order))

	for i, count := range counts {
		assert.Equal(t, gastype.Order[i].Name, count.Type)
		if count.Type == "Oxygen" {
			assert.EqualValues(t, 2, count.ActiveCount)
			assert.EqualValues(t, 1, count.InactiveCount)
		} else {
			assert.Zero(t, count.ActiveCount)
			assert.EqualValues(t, 3, count.InactiveCount)
		}
	}
}

func TestActiveCustomersByType(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1", "Asha", "111122223333")
	f.sell(t, "Oxygen", "2", "Ravi", "444455556666")
	f.sell(t, "Argon", "1", "Meena", "777788889999")

	customers, err := f.reporting.ActiveCustomersByType(context.Background(), "Oxygen")
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Asha", customers[0].Name)
	assert.Equal(t, "Ravi", customers[1].Name)

	none, err := f.reporting.ActiveCustomersByType(context.Background(), "Helium")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.reporting.ActiveCustomersByType(context.Background(), "Plutonium")
	assert.ErrorIs(t, err, gastype.ErrInvalidGasType)
}

func TestSearch_ByAadhar(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1-2", "Asha", "111122223333")

	result, err := f.reporting.Search(context.Background(), "111122223333")
	require.NoError(t, err)
	require.Equal(t, domain.SearchKindCustomer, result.Kind)
	require.NotNil(t, result.Customer)
	assert.Equal(t, "Asha", result.Customer.Customer.Name)
	assert.EqualValues(t, 2, result.Customer.Counts["Oxygen"])
	assert.Len(t, result.Customer.History, 2)
}

func TestSearch_ByName(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1", "Asha", "111122223333")
	f.sell(t, "Oxygen", "2", "Ashok", "444455556666")
	f.sell(t, "Argon", "1", "Ravi", "777788889999")

	// A unique name match returns the full detail.
	result, err := f.reporting.Search(context.Background(), "ravi")
	require.NoError(t, err)
	require.Equal(t, domain.SearchKindCustomer, result.Kind)
	require.NotNil(t, result.Customer)
	assert.Equal(t, "Ravi", result.Customer.Customer.Name)

	// Multiple matches return the candidate list.
	result, err = f.reporting.Search(context.Background(), "ash")
	require.NoError(t, err)
	assert.Equal(t, domain.SearchKindCustomers, result.Kind)
	assert.Len(t, result.Customers, 2)
}

func TestSearch_ByCylinderNumber(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1", "Asha", "111122223333")

	result, err := f.reporting.Search(context.Background(), "oxy0001")
	require.NoError(t, err)
	require.Equal(t, domain.SearchKindCylinder, result.Kind)
	require.NotNil(t, result.Cylinder)
	assert.Equal(t, "OXY0001", result.Cylinder.Cylinder.CylinderNumber)
	assert.Equal(t, cylinderdomain.StatusActive, result.Cylinder.Cylinder.Status)
	require.Len(t, result.Cylinder.History, 1)
	assert.Equal(t, historydomain.ActionSell, result.Cylinder.History[0].Action)
}

func TestSearch_NoMatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.reporting.Search(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.reporting.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestCustomerDetail(t *testing.T) {
	f := newFixture(t)
	resp := f.sell(t, "Oxygen", "1-2", "Asha", "111122223333")

	detail, err := f.reporting.CustomerDetail(context.Background(), resp.Customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, resp.Customer.ID, detail.Customer.ID)
	assert.EqualValues(t, 2, detail.Counts["Oxygen"])
	assert.Len(t, detail.History, 2)

	_, err = f.reporting.CustomerDetail(context.Background(), "999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.reporting.CustomerDetail(context.Background(), "junk")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_NewestFirstWithPaging(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "Oxygen", "1", "Asha", "111122223333")
	f.sell(t, "Oxygen", "2", "Asha", "111122223333")
	f.sell(t, "Oxygen", "3", "Asha", "111122223333")

	entries, err := f.reporting.History(context.Background(), domain.HistoryRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "OXY0003", entries[0].CylinderNumber)
	assert.Equal(t, "OXY0002", entries[1].CylinderNumber)

	rest, err := f.reporting.History(context.Background(), domain.HistoryRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "OXY0001", rest[0].CylinderNumber)
}
