package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/groupbuy/internal/cart"
	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/export"
	"github.com/joseph-ayodele/groupbuy/internal/order"
	"github.com/joseph-ayodele/groupbuy/internal/pricing"
	"github.com/joseph-ayodele/groupbuy/internal/submit"
)

var (
	ErrUnknownItem      = common.NewAppError("UNKNOWN_ITEM", "item is not in the catalog", common.ErrNotFound)
	ErrWouldExceedLimit = common.NewAppError("LIMIT_REACHED", "adding this item would exceed the spend limit", common.ErrInvalidInput)
	ErrSubmitInFlight   = common.NewAppError("SUBMIT_IN_FLIGHT", "a submission is already in progress", common.ErrInvalidInput)
)

// Session owns one catalog and the cart built against it. Every method is
// safe for concurrent use; mutations are serialized so a View never sees a
// half-applied change.
type Session struct {
	cat       *entity.Catalog
	submitter submit.Submitter
	exporter  *export.Service
	logger    *slog.Logger
	now       func() time.Time

	mu   sync.Mutex
	cart *cart.Cart

	submitting sync.Mutex
}

func New(cat *entity.Catalog, submitter submit.Submitter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cat:       cat,
		submitter: submitter,
		exporter:  export.NewService(logger),
		logger:    logger,
		now:       time.Now,
		cart:      cart.New(),
	}
}

func (s *Session) Catalog() *entity.Catalog { return s.cat }

// Add puts one more step of the item in the cart unless that would breach
// the spend limit.
func (s *Session) Add(itemID string) error {
	it, ok := s.cat.Item(itemID)
	if !ok {
		return fmt.Errorf("add %q: %w", itemID, ErrUnknownItem)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if pricing.AddDisabled(s.cat.Meta, pricing.Calc(s.cat, s.cart), it) {
		s.logger.Info("cart.add.blocked", "element_id", itemID, "qty", s.cart.Qty(itemID))
		return fmt.Errorf("add %q: %w", itemID, ErrWouldExceedLimit)
	}
	s.cart.Add(it)
	s.logger.Debug("cart.add", "element_id", itemID, "qty", s.cart.Qty(itemID))
	return nil
}

// Subtract removes one step of the item. It is never limited.
func (s *Session) Subtract(itemID string) error {
	it, ok := s.cat.Item(itemID)
	if !ok {
		return fmt.Errorf("subtract %q: %w", itemID, ErrUnknownItem)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Subtract(it)
	s.logger.Debug("cart.subtract", "element_id", itemID, "qty", s.cart.Qty(itemID))
	return nil
}

// SetQty overwrites a quantity directly, bypassing steps and the limit.
// It exists for restoring a cart from a saved file.
func (s *Session) SetQty(itemID string, qty int) error {
	if _, ok := s.cat.Item(itemID); !ok {
		return fmt.Errorf("set %q: %w", itemID, ErrUnknownItem)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQty(itemID, qty)
	return nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.logger.Debug("cart.clear")
}

// Snapshot returns a detached copy of the current quantities.
func (s *Session) Snapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// View recomputes totals and every item's gate from the current cart.
func (s *Session) View() View {
	return buildView(s.cat, s.Snapshot())
}

func (s *Session) ExportCSV(w io.Writer, name, email string) error {
	return s.exporter.CSV(w, s.cat, s.Snapshot(), name, email)
}

func (s *Session) ExportXLSX(w io.Writer, name, email string) error {
	return s.exporter.XLSX(w, s.cat, s.Snapshot(), name, email)
}

// Submit validates identity, builds a receipt and hands it to the
// submitter under a request id (taken from ctx or freshly generated). Only
// one submission runs at a time; a second call while one is pending returns
// an OutcomeBusy carrying ErrSubmitInFlight without contacting the endpoint.
// The cart is never modified.
func (s *Session) Submit(ctx context.Context, name, email string) order.Outcome {
	ctx, reqID := common.EnsureRequestID(ctx)
	if !s.submitting.TryLock() {
		s.logger.Warn("submit.in_flight", "req_id", reqID)
		return order.Busy(ErrSubmitInFlight)
	}
	defer s.submitting.Unlock()

	receipt, err := order.Build(s.cat, s.Snapshot(), name, email, s.now())
	if err != nil {
		s.logger.Info("submit.invalid", "req_id", reqID, "error", err)
		return order.Invalid(err)
	}

	resp, err := s.submitter.Submit(ctx, s.cat.Meta.SubmitEndpoint, receipt)
	out := order.Interpret(resp, err)
	switch out.Kind {
	case order.OutcomeSubmitted:
		s.logger.Info("submit.ok", "req_id", reqID, "rows_added", out.RowsAdded, "lines", len(receipt.Items))
	case order.OutcomeRejected:
		s.logger.Warn("submit.rejected", "req_id", reqID, "error", out.Err)
	default:
		s.logger.Error("submit.transport_failure", "req_id", reqID, "error", out.Err)
	}
	return out
}

// IsLimitError reports whether err was caused by the spend limit gate.
func IsLimitError(err error) bool {
	return errors.Is(err, ErrWouldExceedLimit)
}
