package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

const orderRowsDDL = `CREATE TABLE IF NOT EXISTS order_rows (
	submission_id     TEXT NOT NULL,
	line_no           INTEGER NOT NULL,
	received_at       TEXT NOT NULL,
	order_timestamp   TEXT NOT NULL,
	name              TEXT NOT NULL,
	email             TEXT NOT NULL,
	element_id        TEXT NOT NULL,
	design_id         TEXT NOT NULL,
	color             TEXT NOT NULL,
	qty               INTEGER NOT NULL,
	price_eur         DOUBLE PRECISION NOT NULL,
	price_cad_base    DOUBLE PRECISION NOT NULL,
	exchange_rate     DOUBLE PRECISION NOT NULL,
	shipping_rate     DOUBLE PRECISION NOT NULL,
	subtotal_cad_base DOUBLE PRECISION NOT NULL,
	shipping_cad      DOUBLE PRECISION NOT NULL,
	total_cad         DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (submission_id, line_no)
)`

const insertOrderRow = `INSERT INTO order_rows (
	submission_id, line_no, received_at, order_timestamp, name, email,
	element_id, design_id, color, qty, price_eur, price_cad_base,
	exchange_rate, shipping_rate, subtotal_cad_base, shipping_cad, total_cad
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// OrderRow is one stored receipt line.
type OrderRow struct {
	SubmissionID uuid.UUID
	LineNo       int
	Email        string
	ElementID    string
	Qty          int
	TotalCAD     float64
}

type OrderRowRepository interface {
	Migrate(ctx context.Context) error
	AppendReceipt(ctx context.Context, receipt *entity.Receipt) (uuid.UUID, int, error)
	CountRows(ctx context.Context) (int, error)
	ListSubmission(ctx context.Context, id uuid.UUID) ([]OrderRow, error)
}

type orderRowRepository struct {
	db     *DB
	logger *slog.Logger
	now    func() time.Time
}

func NewOrderRowRepository(db *DB, logger *slog.Logger) OrderRowRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRowRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *orderRowRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.SQL.ExecContext(ctx, orderRowsDDL); err != nil {
		r.logger.Error("failed to migrate order_rows", "error", err)
		return fmt.Errorf("migrate order_rows: %w: %v", common.ErrDatabase, err)
	}
	return nil
}

// AppendReceipt stores one row per receipt line in a single transaction and
// returns the submission id and the number of rows added.
func (r *orderRowRepository) AppendReceipt(ctx context.Context, receipt *entity.Receipt) (uuid.UUID, int, error) {
	id := uuid.New()
	receivedAt := r.now().UTC().Format(time.RFC3339Nano)

	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return uuid.Nil, 0, fmt.Errorf("%w: begin: %v", common.ErrDatabase, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, r.db.rebind(insertOrderRow))
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("%w: prepare: %v", common.ErrDatabase, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, line := range receipt.Items {
		_, err := stmt.ExecContext(ctx,
			id.String(), i+1, receivedAt, receipt.Timestamp, receipt.Name, receipt.Email,
			line.ElementID, line.DesignID, line.Color, line.Qty, line.PriceEUR, line.PriceCADBase,
			receipt.ExchangeRateEURToCAD, receipt.ShippingRate,
			receipt.SubtotalCADBase, receipt.ShippingCAD, receipt.TotalCAD,
		)
		if err != nil {
			r.logger.Error("failed to insert order row", "submission_id", id, "line_no", i+1, "error", err)
			return uuid.Nil, 0, fmt.Errorf("%w: insert line %d: %v", common.ErrDatabase, i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, 0, fmt.Errorf("%w: commit: %v", common.ErrDatabase, err)
	}
	r.logger.Info("order rows appended",
		"req_id", common.RequestIDFromContext(ctx),
		"submission_id", id,
		"rows", len(receipt.Items),
	)
	return id, len(receipt.Items), nil
}

func (r *orderRowRepository) CountRows(ctx context.Context) (int, error) {
	var n int
	if err := r.db.SQL.QueryRowContext(ctx, "SELECT COUNT(*) FROM order_rows").Scan(&n); err != nil {
		r.logger.Error("failed to count order rows", "error", err)
		return 0, fmt.Errorf("%w: count: %v", common.ErrDatabase, err)
	}
	return n, nil
}

func (r *orderRowRepository) ListSubmission(ctx context.Context, id uuid.UUID) ([]OrderRow, error) {
	rows, err := r.db.SQL.QueryContext(ctx, r.db.rebind(
		`SELECT line_no, email, element_id, qty, total_cad FROM order_rows WHERE submission_id = ? ORDER BY line_no`),
		id.String())
	if err != nil {
		r.logger.Error("failed to list submission", "submission_id", id, "error", err)
		return nil, fmt.Errorf("%w: list: %v", common.ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var out []OrderRow
	for rows.Next() {
		row := OrderRow{SubmissionID: id}
		if err := rows.Scan(&row.LineNo, &row.Email, &row.ElementID, &row.Qty, &row.TotalCAD); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", common.ErrDatabase, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
