package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/gasdepot/internal/history/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (domain.Repository, *gorm.DB, *snowflake.Node) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Entry{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return Provide(), db, node
}

func appendEntry(t *testing.T, repo domain.Repository, db *gorm.DB, node *snowflake.Node, action domain.Action, number string, customerID snowflake.ID, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), db, &domain.Entry{
		ID:             node.Generate(),
		Action:         action,
		CylinderNumber: number,
		CylinderType:   "Oxygen",
		CustomerID:     &customerID,
		CustomerName:   "Asha",
		Aadhar:         "111122223333",
		CreatedAt:      at,
	}))
}

func TestAppendAndFetchOrdering(t *testing.T) {
	repo, db, node := newTestRepo(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	customer := snowflake.ID(7)

	appendEntry(t, repo, db, node, domain.ActionSell, "OXY0001", customer, base)
	appendEntry(t, repo, db, node, domain.ActionSell, "OXY0002", customer, base.Add(time.Minute))
	appendEntry(t, repo, db, node, domain.ActionReturn, "OXY0001", customer, base.Add(2*time.Minute))

	byCylinder, err := repo.ByCylinder(context.Background(), db, "OXY0001")
	require.NoError(t, err)
	require.Len(t, byCylinder, 2)
	assert.Equal(t, domain.ActionReturn, byCylinder[0].Action)
	assert.Equal(t, domain.ActionSell, byCylinder[1].Action)

	byCustomer, err := repo.ByCustomer(context.Background(), db, customer)
	require.NoError(t, err)
	require.Len(t, byCustomer, 3)
	assert.Equal(t, "OXY0001", byCustomer[0].CylinderNumber)
	assert.Equal(t, domain.ActionReturn, byCustomer[0].Action)
}

func TestAll_Paging(t *testing.T) {
	repo, db, node := newTestRepo(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		appendEntry(t, repo, db, node, domain.ActionSell, "OXY0001", snowflake.ID(7), base.Add(time.Duration(i)*time.Minute))
	}

	page, err := repo.All(context.Background(), db, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.All(context.Background(), db, 10, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// Non-positive limit falls back to the default window.
	all, err := repo.All(context.Background(), db, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAppend_SameTimestampTieBreaksOnID(t *testing.T) {
	repo, db, node := newTestRepo(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	appendEntry(t, repo, db, node, domain.ActionSell, "OXY0001", snowflake.ID(7), at)
	appendEntry(t, repo, db, node, domain.ActionReturn, "OXY0001", snowflake.ID(7), at)

	entries, err := repo.ByCylinder(context.Background(), db, "OXY0001")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ActionReturn, entries[0].Action)
}
