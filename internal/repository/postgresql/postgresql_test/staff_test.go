package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
	"github.com/teppen-ops/venue-backend/internal/repository/postgresql"
)

// testDB connects lazily so the suite is skipped, not failed, on machines
// without a test database.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.Migrate(context.Background(), db))
	return db
}

func truncateTables(t *testing.T, db *database.DB, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func TestStaffRepository_CreateAndList(t *testing.T) {
	db := testDB(t)
	truncateTables(t, db, "staffs")
	ctx := context.Background()
	repo := postgresql.NewStaffRepository(db)

	created, err := repo.Create(ctx, staff.Staff{ID: 7, Name: "Aoi", Stores: []string{store.Store201}})
	require.NoError(t, err)
	assert.Equal(t, []string{store.Store201}, created.Stores)
	assert.True(t, created.IsActive)

	_, err = repo.Create(ctx, staff.Staff{ID: 7, Name: "Other"})
	assert.ErrorIs(t, err, staff.ErrStaffIDTaken)

	list, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Aoi", list[0].Name)
}

func TestStaffRepository_UpdateStores(t *testing.T) {
	db := testDB(t)
	truncateTables(t, db, "staffs")
	ctx := context.Background()
	repo := postgresql.NewStaffRepository(db)

	_, err := repo.Create(ctx, staff.Staff{ID: 1, Name: "Rin"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStores(ctx, 1, []string{store.Teppen, store.Store202}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{store.Teppen, store.Store202}, got.Stores)

	assert.ErrorIs(t, repo.UpdateStores(ctx, 99, nil), staff.ErrStaffNotFound)
}

func TestStaffRepository_DeactivateAndReassign(t *testing.T) {
	db := testDB(t)
	truncateTables(t, db, "staffs")
	ctx := context.Background()
	repo := postgresql.NewStaffRepository(db)

	_, err := repo.Create(ctx, staff.Staff{ID: 3, Name: "Aoi"})
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(ctx, 3))
	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	// An inactive row does not block the ID. Reassigning onto it replaces it.
	_, err = repo.Create(ctx, staff.Staff{ID: 8, Name: "Rin"})
	require.NoError(t, err)
	require.NoError(t, repo.ReassignID(ctx, 8, 3))

	moved, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Rin", moved.Name)
}

func TestExpenseRepository_UpdateByID(t *testing.T) {
	db := testDB(t)
	truncateTables(t, db, "expenses")
	ctx := context.Background()
	repo := postgresql.NewExpenseRepository(db)

	created, err := repo.Create(ctx, expense.Expense{
		StoreID: store.Store201, Date: "2025-06-10", Name: "氷", Amount: 3000,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Amount = 3500
	created.Note = "二袋"
	require.NoError(t, repo.Update(ctx, created))

	day, err := repo.ListByStoreDay(ctx, store.Store201, "2025-06-10")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, 3500, day[0].Amount)
	assert.Equal(t, "二袋", day[0].Note)

	assert.ErrorIs(t, repo.Update(ctx, expense.Expense{ID: 424242, Name: "x"}), expense.ErrExpenseNotFound)
}
