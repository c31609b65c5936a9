package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

func openTestDB(t *testing.T) (*DB, OrderRowRepository) {
	t.Helper()
	logger := slog.Default()
	ctx := context.Background()

	db, err := Open(ctx, Config{Driver: DriverSQLite, DSN: "file:" + filepath.Join(t.TempDir(), "orders.db")}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(logger) })
	require.NoError(t, db.HealthCheck(ctx, 0, logger))

	repo := NewOrderRowRepository(db, logger)
	require.NoError(t, repo.Migrate(ctx))
	return db, repo
}

func receipt(lines ...entity.ReceiptLine) *entity.Receipt {
	return &entity.Receipt{
		Timestamp:            "2026-10-16T14:03:07.250Z",
		Name:                 "Ada",
		Email:                "a@b.com",
		ExchangeRateEURToCAD: 1.5,
		ShippingRate:         0.08,
		SpendLimitEUR:        100,
		SubtotalCADBase:      9,
		ShippingCAD:          0.72,
		TotalCAD:             9.72,
		Items:                lines,
	}
}

func TestAppendReceipt(t *testing.T) {
	_, repo := openTestDB(t)
	ctx := context.Background()

	id, n, err := repo.AppendReceipt(ctx, receipt(
		entity.ReceiptLine{ElementID: "300121", DesignID: "3001", Color: "Bright Red", Qty: 50, PriceEUR: 0.12, PriceCADBase: 0.18},
		entity.ReceiptLine{ElementID: "4211088", DesignID: "3023", Color: `O"Ring`, Qty: 100, PriceEUR: 0.03, PriceCADBase: 0.045},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NotEqual(t, uuid.Nil, id)

	rows, err := repo.ListSubmission(ctx, id)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].LineNo)
	assert.Equal(t, "300121", rows[0].ElementID)
	assert.Equal(t, 100, rows[1].Qty)
	assert.InDelta(t, 9.72, rows[1].TotalCAD, 1e-12)

	_, _, err = repo.AppendReceipt(ctx, receipt(entity.ReceiptLine{ElementID: "1", Qty: 5}))
	require.NoError(t, err)

	count, err := repo.CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	_, repo := openTestDB(t)
	assert.NoError(t, repo.Migrate(context.Background()))
}

func TestRebind(t *testing.T) {
	pg := &DB{Driver: DriverPostgres}
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", pg.rebind("SELECT * FROM t WHERE a = ? AND b = ?"))

	lite := &DB{Driver: DriverSQLite}
	assert.Equal(t, "a = ?", lite.rebind("a = ?"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mysql"}, slog.Default())
	assert.Error(t, err)
}
