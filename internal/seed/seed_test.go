package seed

import (
	"testing"

	"github.com/glebarez/sqlite"
	authdomain "github.com/smallbiznis/gasdepot/internal/auth/domain"
	"github.com/smallbiznis/gasdepot/internal/auth/password"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cylinderdomain.Cylinder{}, &authdomain.User{}))
	return db
}

func TestEnsureCylinders_SeedsEveryType(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureCylinders(db, 5))

	var total int64
	require.NoError(t, db.Model(&cylinderdomain.Cylinder{}).Count(&total).Error)
	assert.EqualValues(t, len(gastype.Order)*5, total)

	for _, gt := range gastype.Order {
		var perType int64
		require.NoError(t, db.Model(&cylinderdomain.Cylinder{}).
			Where("type = ?", gt.Name).Count(&perType).Error)
		assert.EqualValues(t, 5, perType, gt.Name)

		var first cylinderdomain.Cylinder
		require.NoError(t, db.
			Where("type = ?", gt.Name).
			Order("cylinder_number asc").
			First(&first).Error)
		assert.Equal(t, gt.Identifier(1), first.CylinderNumber)
		assert.Equal(t, cylinderdomain.StatusInactive, first.Status)
	}
}

func TestEnsureCylinders_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureCylinders(db, 3))
	require.NoError(t, EnsureCylinders(db, 3))

	var total int64
	require.NoError(t, db.Model(&cylinderdomain.Cylinder{}).Count(&total).Error)
	assert.EqualValues(t, len(gastype.Order)*3, total)
}

func TestEnsureCylinders_RejectsBadCount(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, EnsureCylinders(db, 0))
	assert.Error(t, EnsureCylinders(nil, 3))
}

func TestEnsureOperator_CreatesOnce(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureOperator(db, "Vijay", "1234"))

	var user authdomain.User
	require.NoError(t, db.Where("username = ?", "Vijay").First(&user).Error)
	require.True(t, password.Verify(user.Password, "1234"))

	// A second run with a different password must not replace the
	// existing credential.
	require.NoError(t, EnsureOperator(db, "Vijay", "changed"))

	var again authdomain.User
	require.NoError(t, db.Where("username = ?", "Vijay").First(&again).Error)
	assert.Equal(t, user.Password, again.Password)

	var total int64
	require.NoError(t, db.Model(&authdomain.User{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestEnsureOperator_RequiresCredential(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, EnsureOperator(db, "", "1234"))
	assert.Error(t, EnsureOperator(db, "Vijay", ""))
}
