package export

import (
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/order"
	"github.com/joseph-ayodele/groupbuy/internal/pricing"
)

// Service is a tiny façade that writes cart exports and logs the result.
type Service struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, now: time.Now}
}

// CSV writes the cart as CSV to w.
func (s *Service) CSV(w io.Writer, cat *entity.Catalog, q pricing.Quantities, name, email string) error {
	return s.write("csv", WriteCSV, w, cat, q, name, email)
}

// XLSX writes the cart as an XLSX workbook to w.
func (s *Service) XLSX(w io.Writer, cat *entity.Catalog, q pricing.Quantities, name, email string) error {
	return s.write("xlsx", WriteXLSX, w, cat, q, name, email)
}

func (s *Service) write(format string, fn func(io.Writer, iter.Seq[[]string]) error, w io.Writer, cat *entity.Catalog, q pricing.Quantities, name, email string) error {
	start := time.Now()
	ts := s.now().UTC().Format(order.TimestampLayout)
	rows := Rows(cat, q, name, email, ts)

	if err := fn(w, rows); err != nil {
		s.logger.Error("export."+format+".failed", "error", err)
		return err
	}

	n := 0
	for range rows {
		n++
	}
	s.logger.Info("export."+format+".ok",
		"rows", n-1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
