package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStockLevelRepository_ApplyCreatesMissingRow(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-rice")
	unitID := testutil.NewTestUUID("unit-kg")

	err := repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(10))
	require.NoError(t, err)

	level, err := repo.Find(context.Background(), productID, unitID)
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestStockLevelRepository_ApplyAccumulates(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-rice")
	unitID := testutil.NewTestUUID("unit-kg")

	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(10)))
	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(-3)))

	level, err := repo.Find(context.Background(), productID, unitID)
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(decimal.NewFromInt(7)), "expected 7, got %s", level.Quantity)
}

func TestStockLevelRepository_ApplyRejectsOverdraw(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-rice")
	unitID := testutil.NewTestUUID("unit-kg")

	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(5)))

	err := repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	level, err := repo.Find(context.Background(), productID, unitID)
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(decimal.NewFromInt(5)), "overdraw must not change the row")
}

func TestStockLevelRepository_ApplyRejectsNegativeDeltaOnMissingRow(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-ghost")
	unitID := testutil.NewTestUUID("unit-kg")

	err := repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	_, err = repo.Find(context.Background(), productID, unitID)
	assert.ErrorIs(t, err, shared.ErrNotFound, "a rejected outbound delta must not create a row")
}

func TestStockLevelRepository_ApplyToExactlyZero(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-rice")
	unitID := testutil.NewTestUUID("unit-kg")

	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(5)))
	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(-5)))

	level, err := repo.Find(context.Background(), productID, unitID)
	require.NoError(t, err)
	assert.True(t, level.Quantity.IsZero())
}

func TestStockLevelRepository_ApplySurvivesFirstMovementRace(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)
	productID := testutil.NewTestUUID("product-rice")
	unitID := testutil.NewTestUUID("unit-kg")

	// A rival writer lands the first row for the pair between the conditional
	// update and the insert. The insert must tolerate the existing row and
	// re-apply the delta on top of it instead of failing on the duplicate key.
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("rival_first_movement", func(tx *gorm.DB) {
		if fired {
			return
		}
		if _, ok := tx.Statement.Dest.(*inventory.StockLevel); !ok {
			return
		}
		fired = true
		_, execErr := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO stock_levels (product_id, unit_quantity_id, quantity, updated_at) VALUES (?, ?, ?, ?)",
			productID, unitID, decimal.NewFromInt(4), time.Now())
		require.NoError(t, execErr)
	})
	require.NoError(t, err)

	require.NoError(t, repo.Apply(context.Background(), productID, unitID, decimal.NewFromInt(10)))
	require.True(t, fired, "rival insert did not run")

	level, err := repo.Find(context.Background(), productID, unitID)
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(decimal.NewFromInt(14)), "expected 14, got %s", level.Quantity)
}

func TestStockLevelRepository_FindMissingIsNotFound(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormStockLevelRepository(db)

	_, err := repo.Find(context.Background(),
		testutil.NewTestUUID("product-ghost"), testutil.NewTestUUID("unit-kg"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
