package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/repository"
	"github.com/joseph-ayodele/groupbuy/internal/submit"
)

const maxBodyBytes = 1 << 20

// OrderHandler receives receipts from the storefront and appends their
// lines to the order ledger.
type OrderHandler struct {
	rows         repository.OrderRowRepository
	allowedEmail string
	logger       *slog.Logger
}

func NewOrderHandler(rows repository.OrderRowRepository, allowedEmail string, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{rows: rows, allowedEmail: allowedEmail, logger: logger}
}

func (h *OrderHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Submit always answers 200 with {ok,rowsAdded} or {ok:false,error}; the
// storefront treats anything it cannot decode as a transport failure.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	reqID := common.RequestIDFromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.reject(w, reqID, "could not read request body")
		return
	}
	rec, err := decodeReceipt(body)
	if err != nil {
		h.logger.Warn("orders.submit.malformed", "req_id", reqID, "error", err)
		h.reject(w, reqID, "receipt is malformed")
		return
	}

	v := common.NewValidator().
		Field("name", rec.Name, common.Required, common.MaxLength(200)).
		Field("email", rec.Email, common.Required, common.EqualFold(h.allowedEmail))
	if v.HasErrors() {
		h.logger.Warn("orders.submit.invalid", "req_id", reqID, "error", v.ErrorMessage())
		h.reject(w, reqID, v.ErrorMessage())
		return
	}
	if len(rec.Items) == 0 {
		h.reject(w, reqID, "order has no items")
		return
	}

	id, n, err := h.rows.AppendReceipt(r.Context(), rec)
	if err != nil {
		h.logger.Error("orders.submit.append_failed", "req_id", reqID, "error", err)
		h.reject(w, reqID, "could not record order")
		return
	}
	h.logger.Info("orders.submit.ok",
		"req_id", reqID,
		"submission_id", id.String(),
		"email", strings.ToLower(rec.Email),
		"rows_added", n,
	)
	writeJSON(w, http.StatusOK, submit.Response{OK: true, RowsAdded: n})
}

func (h *OrderHandler) reject(w http.ResponseWriter, reqID, msg string) {
	h.logger.Info("orders.submit.rejected", "req_id", reqID, "reason", msg)
	writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
